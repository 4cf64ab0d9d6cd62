package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const defaultConfig = "tacc.yaml"

const (
	emitTAC  = "tac"
	emitLLVM = "llvm"
)

type settings struct {
	Output  string `yaml:"output"`
	Emit    string `yaml:"emit"`
	DumpAST bool   `yaml:"dump-ast"`
	Verbose bool   `yaml:"verbose"`
}

// loadSettings reads path, or tacc.yaml when path is empty. A missing
// tacc.yaml is not an error; a missing explicit path is.
func loadSettings(path string) (settings, error) {
	s := settings{Emit: emitTAC}

	explicit := path != ""
	if !explicit {
		path = defaultConfig
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return s, nil
		}
		return s, tracerr.Wrap(err)
	}

	err = yaml.UnmarshalStrict(data, &s)
	if err != nil {
		return s, tracerr.Wrap(fmt.Errorf("error reading %s: %w", path, err))
	}
	return s, s.validate()
}

func (s settings) validate() error {
	switch s.Emit {
	case emitTAC, emitLLVM:
		return nil
	}
	return fmt.Errorf("unknown emit kind %q, expected %s or %s", s.Emit, emitTAC, emitLLVM)
}
