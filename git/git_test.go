package git

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layervue/create-layervue/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type call struct {
	dir  string
	args string
}

type fakeRunner struct {
	calls  []call
	failOn string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, args: name + " " + strings.Join(args, " ")})
	if f.failOn != "" && args[0] == f.failOn {
		return errors.New("exit status 128")
	}
	return nil
}

func TestSource(t *testing.T) {
	Convey("Given the supported sources", t, func() {
		So(Sources(), ShouldResemble, []Source{Gitee, GitHub})

		Convey("URL points at the mirror", func() {
			So(Gitee.URL("LayerVue", "create-templates"), ShouldEqual, "https://gitee.com/LayerVue/create-templates.git")
			So(GitHub.URL("LayerVue", "create-templates"), ShouldEqual, "https://github.com/LayerVue/create-templates.git")
		})

		Convey("ParseSource accepts names and titles", func() {
			So(lo.Must(ParseSource("GitHub")), ShouldEqual, GitHub)
			So(lo.Must(ParseSource("gitee")), ShouldEqual, Gitee)
			_, err := ParseSource("gitlab")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSparseDownload(t *testing.T) {
	Convey("Given a downloader with a fake runner", t, func() {
		filesystem.SetMemMapFs()
		runner := &fakeRunner{}
		d := &Downloader{Runner: runner, Binary: "git"}

		Convey("When the output directory holds stale files", func() {
			lo.Must0(filesystem.API().MkdirAll(".LayerVue/old", 0o755))
			lo.Must0(filesystem.API().WriteFile(".LayerVue/old/stale.txt", []byte("x"), 0o644))

			err := d.SparseDownload(context.Background(), "https://gitee.com/o/r.git", "main", "vue-ts", ".LayerVue")
			So(err, ShouldBeNil)

			Convey("Then they are removed", func() {
				So(lo.Must(filesystem.API().Exists(".LayerVue/old/stale.txt")), ShouldBeFalse)
			})

			Convey("Then the steps run in order inside the output directory", func() {
				So(lo.Map(runner.calls, func(c call, _ int) string { return c.args }), ShouldResemble, []string{
					"git init",
					"git config core.sparsecheckout true",
					"git remote add origin https://gitee.com/o/r.git",
					"git pull origin main",
				})
				for _, c := range runner.calls {
					So(c.dir, ShouldEqual, ".LayerVue")
				}
			})

			Convey("Then the sparse-checkout file names the folder", func() {
				data, err := filesystem.API().ReadFile(filepath.Join(".LayerVue", ".git", "info", "sparse-checkout"))
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "vue-ts")
			})
		})

		Convey("When a step fails", func() {
			runner.failOn = "pull"
			err := d.SparseDownload(context.Background(), "https://gitee.com/o/r.git", "main", "config.json", ".LayerVue")

			Convey("Then the error names the step", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldStartWith, "git pull")
			})
		})
	})
}

func TestExecRunner(t *testing.T) {
	Convey("Given the exec runner", t, func() {
		if _, err := exec.LookPath("sh"); err != nil {
			SkipSo("sh is not available")
			return
		}

		Convey("A successful command returns nil", func() {
			So(ExecRunner{}.Run(context.Background(), "", "sh", "-c", "exit 0"), ShouldBeNil)
		})

		Convey("A failing command carries its output", func() {
			err := ExecRunner{}.Run(context.Background(), "", "sh", "-c", "echo boom; exit 3")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "boom")
		})
	})
}

func TestLookPath(t *testing.T) {
	Convey("LookPath wraps ErrMissingBinary", t, func() {
		_, err := LookPath("definitely-not-a-git-binary")
		So(errors.Is(err, ErrMissingBinary), ShouldBeTrue)
	})
}
