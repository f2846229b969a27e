// Package scaffold drives the project creation flow: pick a source and a template,
// check out the template folder, rewrite its package.json and copy it into a new project folder.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/layervue/create-layervue/ansi"
	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/log"
	"github.com/layervue/create-layervue/manifest"
	"github.com/layervue/create-layervue/pkgjson"
	"github.com/layervue/create-layervue/util"
	"github.com/samber/mo"
)

// ErrProjectExists is returned when the target project folder is already present.
var ErrProjectExists = errors.New("the folder already exists")

// Asker supplies the answers that were not preset.
type Asker interface {
	Source(sources []git.Source) (git.Source, error)
	Template(templates []manifest.Template) (manifest.Template, error)
	Project(defaults pkgjson.Meta) (pkgjson.Meta, error)
}

// Downloader checks out a single path of a repository into a directory.
type Downloader interface {
	SparseDownload(ctx context.Context, repository, branch, path, out string) error
}

// Repository locates the template catalogue.
type Repository struct {
	Owner    string
	Repo     string
	Branch   string
	Manifest string
}

// Options configures a run. Preset answers skip the matching prompt.
type Options struct {
	Repository Repository
	// Scratch is the transient checkout directory, removed when the run ends.
	Scratch string
	// Exclude lists file names that are not copied into the project.
	Exclude []string
	// Defaults seeds the project prompt.
	Defaults pkgjson.Meta

	Source   mo.Option[git.Source]
	Template mo.Option[string]
	Project  mo.Option[pkgjson.Meta]
}

// Step wraps a long-running step, e.g. to render a spinner.
type Step func(message string, fn func() error) error

// Scaffolder runs the creation flow.
type Scaffolder struct {
	Asker      Asker
	Downloader Downloader
	Step       Step
	Out        io.Writer
}

// Result describes a created project.
type Result struct {
	Source   git.Source
	Template manifest.Template
	Meta     pkgjson.Meta
	Dir      string
}

func (s *Scaffolder) step(message string, fn func() error) error {
	if s.Step == nil {
		return fn()
	}
	return s.Step(message, fn)
}

func (s *Scaffolder) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

// Templates asks for (or takes) the source and returns its catalogue.
// The scratch directory is left in place for a following download.
func (s *Scaffolder) Templates(ctx context.Context, opts *Options) (git.Source, []manifest.Template, error) {
	source, err := s.source(opts)
	if err != nil {
		return "", nil, err
	}

	repo := opts.Repository
	url := source.URL(repo.Owner, repo.Repo)

	err = s.step("Fetching template list", func() error {
		return s.Downloader.SparseDownload(ctx, url, repo.Branch, repo.Manifest, opts.Scratch)
	})
	if err != nil {
		return "", nil, fmt.Errorf("download manifest: %w", err)
	}

	templates, err := manifest.Load(filepath.Join(opts.Scratch, repo.Manifest))
	if err != nil {
		return "", nil, err
	}

	return source, templates, nil
}

// Run creates the project and always removes the scratch directory before returning.
func (s *Scaffolder) Run(ctx context.Context, opts *Options) (*Result, error) {
	defer func() {
		if cleanErr := util.Empty(opts.Scratch); cleanErr != nil {
			log.Warnf("remove scratch directory %s: %v", opts.Scratch, cleanErr)
		}
	}()

	source, templates, err := s.Templates(ctx, opts)
	if err != nil {
		return nil, err
	}

	tpl, err := s.template(opts, templates)
	if err != nil {
		return nil, err
	}

	meta, err := s.project(opts)
	if err != nil {
		return nil, err
	}

	repo := opts.Repository
	err = s.step("Downloading "+tpl.Name, func() error {
		return s.Downloader.SparseDownload(ctx, source.URL(repo.Owner, repo.Repo), repo.Branch, tpl.Path, opts.Scratch)
	})
	if err != nil {
		return nil, fmt.Errorf("download template: %w", err)
	}

	checkout := filepath.Join(opts.Scratch, tpl.Path)
	if err := pkgjson.Rewrite(filepath.Join(checkout, pkgjson.FileName), meta); err != nil {
		return nil, err
	}

	exists, err := util.Exists(meta.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		fmt.Fprintln(s.out(), ansi.Red("The folder already exists"))
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, meta.Name)
	}

	if err := filesystem.API().Mkdir(meta.Name, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create project folder: %w", err)
	}

	if err := util.Copy(checkout, meta.Name, opts.Exclude); err != nil {
		return nil, fmt.Errorf("copy template: %w", err)
	}

	log.WithField("project", meta.Name).Infof("scaffolded %s from %s", tpl.Name, source)
	s.printNextSteps(meta.Name)

	return &Result{Source: source, Template: tpl, Meta: meta, Dir: meta.Name}, nil
}

func (s *Scaffolder) printNextSteps(dir string) {
	w := s.out()
	fmt.Fprintln(w, ansi.Cyan("Done. Now run:"))
	fmt.Fprintln(w, ansi.Green("cd "+dir))
	fmt.Fprintln(w, ansi.Green("pnpm install"))
	fmt.Fprintln(w, ansi.Green("pnpm run dev"))
}

func (s *Scaffolder) source(opts *Options) (git.Source, error) {
	if src, ok := opts.Source.Get(); ok {
		return src, nil
	}
	return s.Asker.Source(git.Sources())
}

func (s *Scaffolder) template(opts *Options, templates []manifest.Template) (manifest.Template, error) {
	if name, ok := opts.Template.Get(); ok {
		return manifest.Find(templates, name)
	}
	return s.Asker.Template(templates)
}

func (s *Scaffolder) project(opts *Options) (pkgjson.Meta, error) {
	meta, ok := opts.Project.Get()
	if !ok {
		var err error
		if meta, err = s.Asker.Project(opts.Defaults); err != nil {
			return pkgjson.Meta{}, err
		}
	}

	if err := meta.Validate(); err != nil {
		return pkgjson.Meta{}, err
	}
	return meta, nil
}
