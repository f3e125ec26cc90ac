package parsley

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Env supplies environment variable lookups for EnvVar-qualified options.
// Parsley uses OSEnv unless SetEnv installs something else.
type Env interface {
	Lookup(key string) (value string, ok bool)
}

// OSEnv reads the process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv serves lookups from a fixed map. Handy for tests and for embedding
// contexts that want hermetic parsing.
type MapEnv struct {
	Data map[string]string
}

func NewMapEnv(data map[string]string) MapEnv {
	return MapEnv{Data: data}
}

func (me MapEnv) Lookup(key string) (string, bool) {
	value, ok := me.Data[key]
	return value, ok
}

// EnvFile serves lookups from a KEY=VAL file parsed once up front.
type EnvFile struct {
	data map[string]string
}

func (ef EnvFile) Lookup(key string) (string, bool) {
	value, ok := ef.data[key]
	return value, ok
}

// ParseEnvFile reads a file of KEY=VAL lines. Blank lines and lines
// starting with "#" or "//" are ignored; values keep any embedded "=".
func ParseEnvFile(path string) (*EnvFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open env file")
	}
	defer file.Close()

	data := map[string]string{}
	scanner := bufio.NewScanner(file)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("error on line %d: not of form KEY=VAL", i)
		}
		data[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read env file")
	}
	return &EnvFile{data}, nil
}
