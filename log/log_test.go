package log

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/layervue/create-layervue/filesystem"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("No log file is created", func() {
			Info("dropped")
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			exists, err := filesystem.API().Exists(path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Entries land in today's file", func() {
			Debug("scaffold started")
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "scaffold started")
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given the json format", t, func() {
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "bogus")
		defer viper.Set(key.LogsJson, false)

		var buf bytes.Buffer
		So(configure(&buf), ShouldBeNil)

		Convey("Fields are encoded and the level falls back to info", func() {
			WithField("step", "pull").Info("running")
			Debug("hidden")

			var entry map[string]any
			So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
			So(entry["step"], ShouldEqual, "pull")
			So(entry["msg"], ShouldEqual, "running")
		})
	})
}
