package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

type Application struct {
	Server   Server   `koanf:"server"`
	Database Database `koanf:"db"`
	Profile  Profile  `koanf:"profile"`
	Advice   Advice   `koanf:"advice"`
	Summary  Summary  `koanf:"summary"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

// Profile holds the values used until the user stores a profile of their own.
type Profile struct {
	Name        string `koanf:"name"`
	TargetSleep int    `koanf:"targetsleep"`
	TargetStudy int    `koanf:"targetstudy"`
}

type Advice struct {
	ApiKey     string `koanf:"apikey"`
	Model      string `koanf:"model"`
	Endpoint   string `koanf:"endpoint"`
	TimeoutSec int    `koanf:"timeoutsec"`
}

// Enabled reports whether an advice generator can be built from this configuration.
func (a Advice) Enabled() bool {
	return a.ApiKey != ""
}

type Summary struct {
	// Groups maps a group name to the category labels summed under it.
	// Groups from the YAML file replace the defaults as a whole.
	Groups map[string][]string `koanf:"groups"`
}

func defaults() Application {
	return Application{
		Server: Server{
			Addr: ":8181",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "dayline",
			Pass:   "",
			Name:   "dayline",
			Schema: "dayline",
		},
		Profile: Profile{
			Name:        "",
			TargetSleep: 7,
			TargetStudy: 3,
		},
		Advice: Advice{
			Model:      "gemini-2.0-flash-lite",
			TimeoutSec: 30,
		},
	}
}

func defaultGroups() map[string][]string {
	return map[string][]string{
		"sleep":      {"sleep"},
		"study":      {"university", "study"},
		"smartphone": {"smartphone"},
		"unknown":    {"unknown"},
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
		if errors.Is(err, os.ErrNotExist) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "DAYLINE_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "DAYLINE_")), "_", ".")
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
	if len(app.Summary.Groups) == 0 {
		app.Summary.Groups = defaultGroups()
	}

	return app, nil
}
