package scaffold

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/manifest"
	"github.com/layervue/create-layervue/pkgjson"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const catalogue = `[{"name": "vue-ts", "description": "Vue 3 + TypeScript", "path": "templates/vue-ts"}]`

// fakeRepo materializes the requested path the way a sparse pull would.
type fakeRepo struct {
	urls  []string
	paths []string
	err   error
}

func (f *fakeRepo) SparseDownload(_ context.Context, repository, branch, path, out string) error {
	f.urls = append(f.urls, repository+"#"+branch)
	f.paths = append(f.paths, path)
	if f.err != nil {
		return f.err
	}

	fs := filesystem.API()
	lo.Must0(fs.RemoveAll(out))
	switch path {
	case "config.json":
		lo.Must0(fs.MkdirAll(out, 0o755))
		lo.Must0(fs.WriteFile(filepath.Join(out, "config.json"), []byte(catalogue), 0o644))
	case "templates/vue-ts":
		dir := filepath.Join(out, path)
		lo.Must0(fs.MkdirAll(filepath.Join(dir, "src"), 0o755))
		lo.Must0(fs.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"vue-ts","version":"1.0.0","license":"MIT"}`), 0o644))
		lo.Must0(fs.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte("lock"), 0o644))
		lo.Must0(fs.WriteFile(filepath.Join(dir, "src", "main.ts"), []byte("createApp()"), 0o644))
	}
	return nil
}

type fakeAsker struct {
	asked []string
	meta  pkgjson.Meta
}

func (f *fakeAsker) Source(sources []git.Source) (git.Source, error) {
	f.asked = append(f.asked, "source")
	return sources[1], nil
}

func (f *fakeAsker) Template(templates []manifest.Template) (manifest.Template, error) {
	f.asked = append(f.asked, "template")
	return templates[0], nil
}

func (f *fakeAsker) Project(defaults pkgjson.Meta) (pkgjson.Meta, error) {
	f.asked = append(f.asked, "project")
	if f.meta.Name != "" {
		return f.meta, nil
	}
	return defaults, nil
}

func newOptions() *Options {
	return &Options{
		Repository: Repository{Owner: "LayerVue", Repo: "create-templates", Branch: "main", Manifest: "config.json"},
		Scratch:    ".LayerVue",
		Exclude:    []string{"pnpm-lock.yaml"},
		Defaults:   pkgjson.Meta{Name: "my-app", Description: "desc", Author: "me", Version: "0.0.1"},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a scaffolder with fakes", t, func() {
		filesystem.SetMemMapFs()
		repo := &fakeRepo{}
		asker := &fakeAsker{}
		var out bytes.Buffer
		var steps []string

		s := &Scaffolder{
			Asker:      asker,
			Downloader: repo,
			Out:        &out,
			Step: func(message string, fn func() error) error {
				steps = append(steps, message)
				return fn()
			},
		}
		opts := newOptions()

		Convey("When every answer is prompted", func() {
			result, err := s.Run(context.Background(), opts)
			So(err, ShouldBeNil)

			Convey("Then the prompts run in order", func() {
				So(asker.asked, ShouldResemble, []string{"source", "template", "project"})
				So(steps, ShouldResemble, []string{"Fetching template list", "Downloading vue-ts"})
			})

			Convey("Then the chosen mirror is used for both downloads", func() {
				So(repo.urls, ShouldResemble, []string{
					"https://github.com/LayerVue/create-templates.git#main",
					"https://github.com/LayerVue/create-templates.git#main",
				})
				So(repo.paths, ShouldResemble, []string{"config.json", "templates/vue-ts"})
			})

			Convey("Then the project holds the rewritten template", func() {
				So(result.Dir, ShouldEqual, "my-app")
				data, err := filesystem.API().ReadFile("my-app/package.json")
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `"name": "my-app"`)
				So(string(data), ShouldContainSubstring, `"author": "me"`)
				So(string(data), ShouldNotContainSubstring, "license")
				So(lo.Must(filesystem.API().Exists("my-app/src/main.ts")), ShouldBeTrue)
				So(lo.Must(filesystem.API().Exists("my-app/pnpm-lock.yaml")), ShouldBeFalse)
			})

			Convey("Then the scratch directory is gone", func() {
				So(lo.Must(filesystem.API().Exists(".LayerVue")), ShouldBeFalse)
			})

			Convey("Then the next steps are printed", func() {
				So(out.String(), ShouldContainSubstring, "Done. Now run:")
				So(out.String(), ShouldContainSubstring, "cd my-app")
				So(out.String(), ShouldContainSubstring, "pnpm run dev")
			})
		})

		Convey("When answers are preset", func() {
			opts.Source = mo.Some(git.Gitee)
			opts.Template = mo.Some("VUE-TS")
			opts.Project = mo.Some(pkgjson.Meta{Name: "preset", Version: "1.2.3"})

			result, err := s.Run(context.Background(), opts)

			Convey("Then nothing is asked", func() {
				So(err, ShouldBeNil)
				So(asker.asked, ShouldBeEmpty)
				So(result.Source, ShouldEqual, git.Gitee)
				So(repo.urls[0], ShouldStartWith, "https://gitee.com/")
				So(lo.Must(filesystem.API().Exists("preset/package.json")), ShouldBeTrue)
			})
		})

		Convey("When the preset template is unknown", func() {
			opts.Template = mo.Some("react")
			_, err := s.Run(context.Background(), opts)

			Convey("Then it fails before downloading the template", func() {
				So(err, ShouldNotBeNil)
				So(repo.paths, ShouldResemble, []string{"config.json"})
				So(lo.Must(filesystem.API().Exists(".LayerVue")), ShouldBeFalse)
			})
		})

		Convey("When the project meta is invalid", func() {
			asker.meta = pkgjson.Meta{Name: "x", Version: "soon"}
			_, err := s.Run(context.Background(), opts)
			So(err, ShouldNotBeNil)
			So(lo.Must(filesystem.API().Exists("x")), ShouldBeFalse)
		})

		Convey("When the project folder already exists", func() {
			lo.Must0(filesystem.API().MkdirAll("my-app", 0o755))
			_, err := s.Run(context.Background(), opts)

			Convey("Then it refuses and cleans up", func() {
				So(errors.Is(err, ErrProjectExists), ShouldBeTrue)
				So(out.String(), ShouldContainSubstring, "The folder already exists")
				So(lo.Must(filesystem.API().Exists(".LayerVue")), ShouldBeFalse)
				So(lo.Must(filesystem.API().Exists("my-app/package.json")), ShouldBeFalse)
			})
		})

		Convey("When the download fails", func() {
			repo.err = errors.New("exit status 128")
			_, err := s.Run(context.Background(), opts)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "download manifest")
		})
	})
}
