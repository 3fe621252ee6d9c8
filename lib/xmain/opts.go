package xmain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

type Opts struct {
	Args  []string
	Flags *pflag.FlagSet
	env   *xos.Env
	log   *cmdlog.Logger

	// flag name to environment variable
	flagEnv map[string]string
}

func NewOpts(env *xos.Env, log *cmdlog.Logger, args []string) *Opts {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	return &Opts{
		Args:    args,
		Flags:   flags,
		env:     env,
		log:     log,
		flagEnv: make(map[string]string),
	}
}

// Defaults renders every flag with its default, usage and environment variable.
func (o *Opts) Defaults() string {
	var lines []string
	maxLen := 0
	o.Flags.VisitAll(func(f *pflag.Flag) {
		line := ""
		if f.Shorthand != "" {
			line = fmt.Sprintf("  -%s, --%s", f.Shorthand, f.Name)
		} else {
			line = fmt.Sprintf("      --%s", f.Name)
		}

		varname, usage := pflag.UnquoteUsage(f)
		if varname != "" {
			line += " " + varname
		}

		// \x00 marks where the usage column starts.
		line += "\x00"
		if len(line) > maxLen {
			maxLen = len(line)
		}

		line += usage
		if f.DefValue != "" && f.DefValue != "false" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		if envKey, ok := o.flagEnv[f.Name]; ok {
			line += fmt.Sprintf(" ($%s)", envKey)
		}
		lines = append(lines, line)
	})

	b := &strings.Builder{}
	for _, line := range lines {
		sidx := strings.Index(line, "\x00")
		spacing := strings.Repeat(" ", maxLen-sidx)
		fmt.Fprintln(b, line[:sidx], spacing, wrap(maxLen+2, 0, line[sidx+1:]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (o *Opts) getEnv(flag, envKey string) string {
	if envKey == "" {
		return ""
	}
	o.flagEnv[flag] = envKey
	return o.env.Getenv(envKey)
}

func (o *Opts) Int64(envKey, flag, shortFlag string, defaultVal int64, usage string) (*int64, error) {
	if env := o.getEnv(flag, envKey); env != "" {
		envVal, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(`invalid environment variable %s. Expected int64. Found "%s".`, envKey, env)
		}
		defaultVal = envVal
	}

	return o.Flags.Int64P(flag, shortFlag, defaultVal, usage), nil
}

func (o *Opts) String(envKey, flag, shortFlag string, defaultVal, usage string) *string {
	if env := o.getEnv(flag, envKey); env != "" {
		defaultVal = env
	}

	return o.Flags.StringP(flag, shortFlag, defaultVal, usage)
}

func (o *Opts) Bool(envKey, flag, shortFlag string, defaultVal bool, usage string) (*bool, error) {
	if env := o.getEnv(flag, envKey); env != "" {
		if !boolyEnv(env) {
			return nil, fmt.Errorf(`invalid environment variable %s. Expected bool. Found "%s".`, envKey, env)
		}
		defaultVal = truthyEnv(env)
	}

	return o.Flags.BoolP(flag, shortFlag, defaultVal, usage), nil
}

func boolyEnv(s string) bool {
	return falseyEnv(s) || truthyEnv(s)
}

func falseyEnv(s string) bool {
	return s == "0" || s == "false"
}

func truthyEnv(s string) bool {
	return s == "1" || s == "true"
}
