package reseed

// Version defines the current release version of su3-tools.
const Version = "0.1.0"

// routerInfoPattern matches the file names of router info entries in a netDb
// directory and inside reseed bundles.
const routerInfoPattern = `^routerInfo-[A-Za-z0-9=~-]+\.dat$`
