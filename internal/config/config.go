// Package config holds the analysis session configuration for taskforget.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default identities of the bundled task library.
const (
	DefaultTask         = "github.com/mpyw/taskforget/task.Task"
	DefaultGenericTask  = "github.com/mpyw/taskforget/task.Future"
	DefaultVoidTask     = "github.com/mpyw/taskforget/task.Void"
	DefaultForgetMethod = "Forget"
)

// Checker keys used in messages and fixes tables.
const (
	CheckerTask     = "task"
	CheckerTaskVoid = "taskvoid"
)

// Default message templates. Each receives the callee display name.
const (
	DefaultTaskMessage     = "result of %s() is neither awaited nor forgotten"
	DefaultTaskVoidMessage = "fire-and-forget %s() is neither awaited nor forgotten"
)

// ErrBadTemplate is returned when a message template does not take exactly one %s verb.
var ErrBadTemplate = errors.New("message template must contain exactly one %s verb")

// Types lists the recognized deferred-result identities in "pkg/path.TypeName" form.
type Types struct {
	Task    []string `toml:"task"`
	Generic []string `toml:"generic"`
	Void    []string `toml:"void"`
}

// Config is the read-only configuration of one analysis session.
type Config struct {
	Types         Types
	ForgetMethod  string
	Messages      map[string]string
	Fixes         map[string][]string
	Checkers      map[string]bool
	SkipGenerated bool
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Types: Types{
			Task:    []string{DefaultTask},
			Generic: []string{DefaultGenericTask},
			Void:    []string{DefaultVoidTask},
		},
		ForgetMethod: DefaultForgetMethod,
		Messages: map[string]string{
			CheckerTask:     DefaultTaskMessage,
			CheckerTaskVoid: DefaultTaskVoidMessage,
		},
		Fixes: map[string][]string{
			CheckerTask:     {"forget", "await"},
			CheckerTaskVoid: {"forget", "await"},
		},
		Checkers: map[string]bool{
			CheckerTask:     true,
			CheckerTaskVoid: true,
		},
	}
}

// Message returns the message template for checker.
func (c Config) Message(checker string) string {
	if tmpl, ok := c.Messages[checker]; ok && tmpl != "" {
		return tmpl
	}
	if checker == CheckerTaskVoid {
		return DefaultTaskVoidMessage
	}
	return DefaultTaskMessage
}

// Enabled reports whether checker is enabled.
func (c Config) Enabled(checker string) bool {
	return c.Checkers[checker]
}

// Validate checks that every message template takes exactly one %s verb.
func (c Config) Validate() error {
	for checker, tmpl := range c.Messages {
		if strings.Count(tmpl, "%s") != 1 || strings.Count(tmpl, "%") != 1 {
			return fmt.Errorf("messages.%s: %w", checker, ErrBadTemplate)
		}
	}
	if c.ForgetMethod == "" {
		return errors.New("forget-method must not be empty")
	}
	return nil
}

// file is the TOML layout of a configuration file.
type file struct {
	ForgetMethod  string              `toml:"forget-method"`
	SkipGenerated *bool               `toml:"skip-generated"`
	Types         Types               `toml:"types"`
	Messages      map[string]string   `toml:"messages"`
	Fixes         map[string][]string `toml:"fixes"`
	Checkers      map[string]bool     `toml:"checkers"`
}

// LoadFile decodes the TOML file at path on top of base.
// Type lists are merged; scalar values and table entries in the file take
// precedence over base.
func LoadFile(path string, base Config) (Config, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	cfg := base.clone()
	cfg.Types.Task = appendUnique(cfg.Types.Task, f.Types.Task...)
	cfg.Types.Generic = appendUnique(cfg.Types.Generic, f.Types.Generic...)
	cfg.Types.Void = appendUnique(cfg.Types.Void, f.Types.Void...)

	if f.ForgetMethod != "" {
		cfg.ForgetMethod = f.ForgetMethod
	}
	if f.SkipGenerated != nil {
		cfg.SkipGenerated = *f.SkipGenerated
	}
	for k, v := range f.Messages {
		cfg.Messages[k] = v
	}
	for k, v := range f.Fixes {
		cfg.Fixes[k] = v
	}
	for k, v := range f.Checkers {
		cfg.Checkers[k] = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SplitList splits a comma-separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var list []string
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}

func (c Config) clone() Config {
	out := c
	out.Types = Types{
		Task:    append([]string(nil), c.Types.Task...),
		Generic: append([]string(nil), c.Types.Generic...),
		Void:    append([]string(nil), c.Types.Void...),
	}
	out.Messages = make(map[string]string, len(c.Messages))
	for k, v := range c.Messages {
		out.Messages[k] = v
	}
	out.Fixes = make(map[string][]string, len(c.Fixes))
	for k, v := range c.Fixes {
		out.Fixes[k] = append([]string(nil), v...)
	}
	out.Checkers = make(map[string]bool, len(c.Checkers))
	for k, v := range c.Checkers {
		out.Checkers[k] = v
	}
	return out
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		dup := false
		for _, existing := range list {
			if existing == item {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, item)
		}
	}
	return list
}
