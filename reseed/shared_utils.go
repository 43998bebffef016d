package reseed

import (
	"regexp"
	"strings"

	"github.com/go-i2p/logger"
)

var lgr = logger.GetGoI2PLogger()

var routerInfoRegexp = regexp.MustCompile(routerInfoPattern)

// SignerFilenameFromID converts a signer ID into a filesystem-safe filename.
// Replaces '@' symbols with '_at_' to create valid filenames.
func SignerFilenameFromID(signerID string) string {
	return strings.Replace(signerID, "@", "_at_", 1)
}

// IsRouterInfoName reports whether name looks like a netDb router info file.
func IsRouterInfoName(name string) bool {
	return routerInfoRegexp.MatchString(name)
}
