package cmd

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/layervue/create-layervue/config"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/progress"
	"github.com/layervue/create-layervue/prompt"
	"github.com/layervue/create-layervue/scaffold"
	"github.com/layervue/create-layervue/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"
)

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func setup() {
	filesystem.SetMemMapFs()
	viper.Reset()
	if err := config.Setup(); err != nil {
		panic(err)
	}
}

func newRunCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("template", "", "")
	c.Flags().String("name", "", "")
	c.Flags().String("description", "", "")
	c.Flags().String("author", "", "")
	c.Flags().String("project-version", "", "")
	return c
}

func TestBanner(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		setup()

		Convey("The banner wraps and keeps the title text", func() {
			b, err := banner(30)
			So(err, ShouldBeNil)

			plain := escapes.ReplaceAllString(b, "")
			lines := strings.Split(plain, "\n")
			So(len(lines), ShouldBeGreaterThan, 1)
			So(strings.Join(strings.Fields(plain), " "), ShouldEqual, "LayerVue - "+constant.Tagline)

			So(b, ShouldStartWith, "\x1b[38;2;255;141;26mL")
		})

		Convey("A broken endpoint color is reported", func() {
			viper.Set(key.BannerStart, "cmyk(1,2,3)")
			_, err := banner(80)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestScaffoldOptions(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		setup()

		Convey("Without flags everything is prompted", func() {
			opts, err := scaffoldOptions(newRunCmd())
			So(err, ShouldBeNil)
			So(opts.Source.IsAbsent(), ShouldBeTrue)
			So(opts.Template.IsAbsent(), ShouldBeTrue)
			So(opts.Project.IsAbsent(), ShouldBeTrue)
			So(opts.Repository.Owner, ShouldEqual, "LayerVue")
			So(opts.Repository.Manifest, ShouldEqual, "config.json")
			So(opts.Exclude, ShouldResemble, []string{"pnpm-lock.yaml"})
			So(opts.Defaults.Version, ShouldEqual, "0.0.1")
		})

		Convey("Flags preset the answers", func() {
			viper.Set(key.TemplateSource, "github")
			c := newRunCmd()
			So(c.Flags().Set("template", "vue-ts"), ShouldBeNil)
			So(c.Flags().Set("name", "demo"), ShouldBeNil)
			So(c.Flags().Set("project-version", "1.2.3"), ShouldBeNil)

			opts, err := scaffoldOptions(c)
			So(err, ShouldBeNil)
			So(opts.Source.MustGet(), ShouldEqual, git.GitHub)
			So(opts.Template.MustGet(), ShouldEqual, "vue-ts")

			meta := opts.Project.MustGet()
			So(meta.Name, ShouldEqual, "demo")
			So(meta.Version, ShouldEqual, "1.2.3")
			So(meta.Author, ShouldEqual, "LayerVue")
		})

		Convey("An unknown source is rejected", func() {
			viper.Set(key.TemplateSource, "bitbucket")
			_, err := scaffoldOptions(newRunCmd())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMissingGit(t *testing.T) {
	Convey("The missing git notice names the binary", t, func() {
		So(escapes.ReplaceAllString(missingGit("/opt/git"), ""), ShouldContainSubstring, "'/opt/git'")
	})
}

func TestEnvNames(t *testing.T) {
	Convey("Every config key is exposed under the app prefix", t, func() {
		names := envNames()
		So(names, ShouldContain, "LAYERVUE_TEMPLATE_SOURCE")
		So(names, ShouldContain, "LAYERVUE_BANNER_START")
		So(names, ShouldContain, where.EnvConfigPath)
		So(len(names), ShouldEqual, len(config.EnvExposed)+1)
	})
}

func TestExitStatus(t *testing.T) {
	Convey("Given the outcome of a scaffold run", t, func() {
		Convey("Success exits cleanly", func() {
			code, report := exitStatus(nil)
			So(code, ShouldEqual, 0)
			So(report, ShouldBeFalse)
		})

		Convey("An existing folder fails without repeating the notice", func() {
			code, report := exitStatus(fmt.Errorf("%w: my-app", scaffold.ErrProjectExists))
			So(code, ShouldEqual, 1)
			So(report, ShouldBeFalse)
		})

		Convey("Interrupts exit with 130 silently", func() {
			for _, err := range []error{prompt.ErrAborted, progress.ErrInterrupted} {
				code, report := exitStatus(err)
				So(code, ShouldEqual, 130)
				So(report, ShouldBeFalse)
			}
		})

		Convey("Anything else is reported", func() {
			code, report := exitStatus(errors.New("git pull: exit status 1"))
			So(code, ShouldEqual, 1)
			So(report, ShouldBeTrue)
		})
	})
}
