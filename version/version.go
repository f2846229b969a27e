// Package version tracks the application version and discovers newer releases.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/network"
	"github.com/layervue/create-layervue/util"
	"github.com/layervue/create-layervue/where"
	"github.com/metafates/gache"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       where.Version(),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// releasesURL is swapped by tests.
var releasesURL = constant.Releases

// Compare orders two version strings; a leading "v" is ignored.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := semver.NewVersion(strings.TrimPrefix(a, "v"))
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", a, err)
	}

	bv, err := semver.NewVersion(strings.TrimPrefix(b, "v"))
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", b, err)
	}

	return av.Compare(bv), nil
}

// Latest returns the most recent released version, cached on disk for two days.
func Latest() (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases endpoint answered %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(latest)
	return latest, nil
}
