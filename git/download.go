package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/log"
	"github.com/layervue/create-layervue/util"
	"github.com/sirupsen/logrus"
)

// Downloader performs sparse checkouts with the configured git binary.
type Downloader struct {
	Runner Runner
	Binary string
}

// NewDownloader returns a Downloader running binary as a subprocess.
func NewDownloader(binary string) *Downloader {
	return &Downloader{Runner: ExecRunner{}, Binary: binary}
}

// SparseDownload checks out only path of repository at branch into out.
//
// Any previous content of out is removed first. On success the requested folder
// is available at filepath.Join(out, path).
func (d *Downloader) SparseDownload(ctx context.Context, repository, branch, path, out string) error {
	entry := log.WithFields(logrus.Fields{
		"repository": repository,
		"branch":     branch,
		"path":       path,
		"out":        out,
	})
	entry.Info("sparse download")

	if err := util.Empty(out); err != nil {
		return fmt.Errorf("clear %s: %w", out, err)
	}

	fs := filesystem.API()
	info := filepath.Join(out, ".git", "info")
	if err := fs.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}

	if err := d.git(ctx, out, "init"); err != nil {
		return err
	}

	if err := d.git(ctx, out, "config", "core.sparsecheckout", "true"); err != nil {
		return err
	}

	if err := fs.MkdirAll(info, os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", info, err)
	}

	if err := fs.WriteFile(filepath.Join(info, "sparse-checkout"), []byte(path), 0o644); err != nil {
		return fmt.Errorf("write sparse-checkout: %w", err)
	}

	if err := d.git(ctx, out, "remote", "add", "origin", repository); err != nil {
		return err
	}

	if err := d.git(ctx, out, "pull", "origin", branch); err != nil {
		return err
	}

	entry.Debug("sparse download finished")
	return nil
}

func (d *Downloader) git(ctx context.Context, dir string, args ...string) error {
	log.WithField("dir", dir).Debugf("%s %v", d.Binary, args)
	if err := d.Runner.Run(ctx, dir, d.Binary, args...); err != nil {
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
