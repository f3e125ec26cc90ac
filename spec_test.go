package parsley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureWarnings(t *testing.T) *[]string {
	t.Helper()
	warnings := &[]string{}
	prev := SetWarningFunc(CollectWarnings(warnings))
	t.Cleanup(func() {
		SetWarningFunc(prev)
	})
	return warnings
}

func TestSpecFactories(t *testing.T) {
	flag := FlagSpec("verbose", 'v', "Verbose output.", false)
	assert.Equal(t, KindFlag, flag.kind)
	assert.False(t, flag.isRequired)
	assert.False(t, flag.isSingleton)
	assert.True(t, flag.defaultDefined, "flags are implicitly defined, defaulting to false")

	str := StrSpec("name", 'n', "Your name.", true)
	assert.Equal(t, KindStr, str.kind)
	assert.True(t, str.isRequired)
	assert.False(t, str.defaultDefined)

	enum := EnumSpec("mode", NoShort, "Mode.", []string{"aaa", "bbb"}, false)
	assert.Equal(t, KindEnum, enum.kind)
	assert.Equal(t, []string{"aaa", "bbb"}, enum.enumOptions)
	assert.Equal(t, "--mode", enum.name())

	help := HelpSpec()
	assert.True(t, help.isSingleton)
	assert.True(t, help.defaultDefined)
	assert.Equal(t, "-h, --help", help.name())

	version := VersionSpec()
	assert.True(t, version.isSingleton)
	assert.Equal(t, "-V, --version", version.name())
}

func TestSpecEnumOptionsAreCopied(t *testing.T) {
	choices := []string{"aaa", "bbb"}
	enum := EnumSpec("mode", 'm', "Mode.", choices, false)
	choices[0] = "zzz"
	assert.Equal(t, []string{"aaa", "bbb"}, enum.enumOptions)
}

func TestSpecQualifierCopyOnWrite(t *testing.T) {
	base := IntSpec("number", 'n', "Number.", false)
	qualified := base.DefInt(5).IntRange(1, 10).EnvVar("NUMBER")

	assert.False(t, base.defaultDefined)
	assert.False(t, base.rangeDefined)
	assert.False(t, base.envDefined)

	assert.True(t, qualified.defaultDefined)
	assert.Equal(t, 5, qualified.defaultInt)
	assert.True(t, qualified.rangeDefined)
	assert.Equal(t, 1, qualified.minInt)
	assert.Equal(t, 10, qualified.maxInt)
	assert.Equal(t, "NUMBER", qualified.envName)
}

func TestSpecQualifierKindMismatch(t *testing.T) {
	warnings := captureWarnings(t)

	spec := StrSpec("name", 'n', "Name.", false).
		DefInt(5).
		DefReal(1.5).
		IntRange(1, 10).
		RealRange(0.5, 2.5)

	assert.False(t, spec.defaultDefined)
	assert.False(t, spec.rangeDefined)
	require.Len(t, *warnings, 4)
	assert.Contains(t, (*warnings)[0], "the string option 'name'")
}

func TestSpecSecondaryQualifierIgnored(t *testing.T) {
	warnings := captureWarnings(t)

	spec := IntSpec("number", 'n', "Number.", false).DefInt(5).DefInt(6)
	assert.Equal(t, 5, spec.defaultInt)

	spec = spec.IntRange(1, 10).IntRange(2, 20)
	assert.Equal(t, 1, spec.minInt)
	assert.Equal(t, 10, spec.maxInt)

	spec = spec.EnvVar("A").EnvVar("B")
	assert.Equal(t, "A", spec.envName)

	require.Len(t, *warnings, 3)
	for _, w := range *warnings {
		assert.Contains(t, w, "secondary")
	}
}

func TestSpecEnumDefaultMustBeAllowed(t *testing.T) {
	warnings := captureWarnings(t)

	spec := EnumSpec("mode", 'm', "Mode.", []string{"aaa", "bbb"}, false).DefStr("zzz")
	assert.False(t, spec.defaultDefined)
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "not an allowed value")

	spec = spec.DefStr("bbb")
	assert.True(t, spec.defaultDefined)
	assert.Equal(t, "bbb", spec.defaultStr)
	assert.Len(t, *warnings, 1)
}

func TestSpecDefaultRangeCrossCheck(t *testing.T) {
	warnings := captureWarnings(t)

	// Whichever of default/range is set second is checked against the one
	// already set; the violation warns but the qualifier still applies.
	spec := IntSpec("number", 'n', "Number.", false).IntRange(1, 10).DefInt(50)
	assert.True(t, spec.defaultDefined)
	assert.Equal(t, 50, spec.defaultInt)
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "out of range")

	*warnings = (*warnings)[:0]
	spec = RealSpec("real", 'r', "Real.", false).DefReal(5.0).RealRange(1.0, 2.0)
	assert.True(t, spec.rangeDefined)
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "out of range")
}

func TestSpecEmptyEnvVar(t *testing.T) {
	spec := StrSpec("name", 'n', "Name.", false).EnvVar("")
	assert.False(t, spec.envDefined)
}

func TestRegistryConflictingNames(t *testing.T) {
	warnings := captureWarnings(t)

	p := New(
		StrSpec("name", 'n', "Name.", false),
		IntSpec("name", 'c', "Also name.", false),
	)
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "conflicting option names")

	err := p.Process([]string{"prog"}, true)
	require.Error(t, err)
	assert.Equal(t, "option specification errors", p.ErrorMessage())

	// The registry stays invalid for every subsequent call.
	err = p.Process([]string{"prog", "--name", "x"}, true)
	require.Error(t, err)
	assert.Equal(t, "option specification errors", err.Error())
}

func TestRegistryConflictingShortNames(t *testing.T) {
	warnings := captureWarnings(t)

	p := New(
		StrSpec("name", 'n', "Name.", false),
		IntSpec("number", 'n', "Number.", false),
	)
	assert.Len(t, *warnings, 1)

	err := p.Process([]string{"prog"}, true)
	require.Error(t, err)
	assert.Equal(t, "option specification errors", err.Error())
}

func TestRegistryNoShortNeverConflicts(t *testing.T) {
	warnings := captureWarnings(t)

	p := New(
		StrSpec("name", NoShort, "Name.", false),
		IntSpec("number", NoShort, "Number.", false),
	)
	assert.Empty(t, *warnings)

	err := p.Process([]string{"prog"}, true)
	require.NoError(t, err)
}
