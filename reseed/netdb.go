package reseed

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-i2p/common/router_info"
)

// LocalNetDb reads router info files from a netDb directory on disk so they can
// be packed into a reseed bundle.
type LocalNetDb struct {
	// Path specifies the filesystem location of the router information database
	Path string
	// MaxRouterInfoAge excludes files modified longer ago than this. Zero keeps everything.
	MaxRouterInfoAge time.Duration
	// Validate parses every router info and drops the ones that fail to parse or
	// are unreachable, congested or too old a version.
	Validate bool
}

// NewLocalNetDb creates a new local router database instance with specified parameters.
func NewLocalNetDb(path string, maxAge time.Duration) *LocalNetDb {
	return &LocalNetDb{
		Path:             path,
		MaxRouterInfoAge: maxAge,
	}
}

// RouterInfos returns the router info files under db.Path, sorted by name.
func (db *LocalNetDb) RouterInfos() ([]RouterInfo, error) {
	var routerInfos []RouterInfo

	err := filepath.Walk(db.Path, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() || !IsRouterInfoName(f.Name()) {
			return nil
		}

		// ignore outdated routerInfos
		if db.MaxRouterInfoAge > 0 && time.Since(f.ModTime()) > db.MaxRouterInfoAge {
			return nil
		}

		riBytes, err := os.ReadFile(path)
		if nil != err {
			lgr.WithError(err).WithField("path", path).Error("Error reading RouterInfo file")
			return nil
		}

		if db.Validate && !usefulRouterInfo(path, riBytes) {
			return nil
		}

		routerInfos = append(routerInfos, RouterInfo{
			Name:    f.Name(),
			ModTime: f.ModTime(),
			Data:    riBytes,
		})
		return nil
	})
	if err != nil {
		lgr.WithError(err).WithField("netdb_path", db.Path).Error("Failed to walk netDb")
		return nil, err
	}

	sort.Slice(routerInfos, func(i, j int) bool { return routerInfos[i].Name < routerInfos[j].Name })
	return routerInfos, nil
}

func usefulRouterInfo(path string, data []byte) bool {
	riStruct, remainder, err := router_info.ReadRouterInfo(data)
	if err != nil {
		lgr.WithError(err).WithField("path", path).Error("RouterInfo Parsing Error")
		lgr.WithField("path", path).WithField("remainder", len(remainder)).Debug("Leftover Data(for debugging)")
		return false
	}

	gv, err := riStruct.GoodVersion()
	if err != nil {
		lgr.WithError(err).WithField("path", path).Debug("RouterInfo version check failed")
		return false
	}

	// skip crappy routerInfos
	if riStruct.Reachable() && riStruct.UnCongested() && gv {
		return true
	}
	lgr.WithField("path", path).WithField("capabilities", riStruct.RouterCapabilities()).WithField("version", riStruct.RouterVersion()).Debug("Skipped less-useful RouterInfo")
	return false
}
