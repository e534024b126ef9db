package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tintama/tintama/pkg/page"
)

const DefaultPath = "./config/tintama.yaml"

type Application struct {
	Timezone string  `koanf:"timezone"`
	Table    Table   `koanf:"table"`
	Labels   Labels  `koanf:"labels"`
	Server   Server  `koanf:"server"`
	Browser  Browser `koanf:"browser"`
	Log      Log     `koanf:"log"`
}

type Table struct {
	Selector string `koanf:"selector"`
}

type Labels struct {
	Work  string `koanf:"work"`
	Break string `koanf:"break"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Browser struct {
	Url          string  `koanf:"url"`
	Headless     bool    `koanf:"headless"`
	StorageState string  `koanf:"storagestate"`
	Timeout      float64 `koanf:"timeout"`
	TableWait    float64 `koanf:"tablewait"`
}

type Log struct {
	Level string `koanf:"level"`
}

func defaults() Application {
	return Application{
		Timezone: "Asia/Tokyo",
		Table: Table{
			Selector: page.DefaultTableSelector,
		},
		Labels: Labels{
			Work:  page.DefaultLabels.Work,
			Break: page.DefaultLabels.Break,
		},
		Server: Server{
			Addr: ":8282",
		},
		Browser: Browser{
			Headless:  true,
			Timeout:   page.DefaultBrowserTimeout,
			TableWait: page.DefaultTableWait,
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "TINTAMA_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TINTAMA_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

// Validate checks the values that would otherwise only fail once a page is processed.
func (a Application) Validate() error {
	if _, err := a.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", a.Timezone, err)
	}
	if err := page.ValidateSelector(a.Table.Selector); err != nil {
		return fmt.Errorf("invalid table.selector: %w", err)
	}
	return nil
}

// Location resolves the configured timezone, "Local" or empty meaning the host zone.
func (a Application) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}

func (a Application) PageOptions() page.Options {
	return page.Options{
		TableSelector: a.Table.Selector,
		Labels: page.Labels{
			Work:  a.Labels.Work,
			Break: a.Labels.Break,
		},
	}
}

func (a Application) BrowserOptions() page.BrowserOptions {
	return page.BrowserOptions{
		Headless:         a.Browser.Headless,
		StorageStatePath: a.Browser.StorageState,
		Timeout:          a.Browser.Timeout,
		TableWait:        a.Browser.TableWait,
	}
}
