package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("my:app?"), ShouldEqual, "my_app")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("my  app"), ShouldEqual, "my_app")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-my-app-"), ShouldEqual, "my-app")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "template", "templates"), ShouldEqual, "1 template")
		So(Quantify(3, "template", "templates"), ShouldEqual, "3 templates")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("scratch"), ShouldEqual, "Scratch")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestTerminalWidth(t *testing.T) {
	Convey("TerminalWidth falls back outside a terminal", t, func() {
		if IsTerminal() {
			So(TerminalWidth(80), ShouldBeGreaterThan, 0)
			return
		}
		So(TerminalWidth(80), ShouldEqual, 80)
	})
}
