package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSpec_NamedSchedules(t *testing.T) {
	path := writeSpecFile(t, `
version: "1"
schedules:
  - name: baseline
    family: linear
    beta_start: 0.0001
    beta_end: 0.02
    timesteps: 100
  - name: aggressive
    family: quad
    beta_start: 0.001
    beta_end: 0.2
    timesteps: 50
`)

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	require.NoError(t, spec.Validate())
	require.Len(t, spec.Schedules, 2)

	baseline := spec.Schedules[0]
	assert.Equal(t, "baseline", baseline.Name)
	assert.Equal(t, ScheduleParams{BetaStart: 0.0001, BetaEnd: 0.02, Timesteps: 100, Family: FamilyLinear}, baseline.Params)

	aggressive := spec.Schedules[1]
	assert.Equal(t, "aggressive", aggressive.Name)
	assert.Equal(t, FamilyQuad, aggressive.Params.Family)
}

func TestLoadSpec_OmittedFieldsGetDefaults(t *testing.T) {
	path := writeSpecFile(t, `
version: "1"
schedules:
  - name: defaults-only
`)

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	require.Len(t, spec.Schedules, 1)

	p := spec.Schedules[0].Params
	assert.Equal(t, DefaultBetaStart, p.BetaStart)
	assert.Equal(t, DefaultBetaEnd, p.BetaEnd)
	assert.Equal(t, DefaultTimesteps, p.Timesteps)
	assert.Equal(t, FamilyLinear, p.Family)
}

func TestLoadSpec_RejectsUnknownField(t *testing.T) {
	path := writeSpecFile(t, `
version: "1"
schedules:
  - name: typo
    famly: linear
`)

	_, err := LoadSpec(path)
	assert.Error(t, err)
}

func TestLoadSpec_MissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSpecValidate_DuplicateName(t *testing.T) {
	spec := &Spec{Schedules: []NamedSchedule{
		{Name: "a", Params: ScheduleParams{Family: FamilyLinear}},
		{Name: "a", Params: ScheduleParams{Family: FamilyConst}},
	}}
	err := spec.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestSpecValidate_UnknownFamily(t *testing.T) {
	spec := &Spec{Schedules: []NamedSchedule{
		{Name: "a", Params: ScheduleParams{Family: ScheduleFamily("cosine")}},
	}}
	assert.Error(t, spec.Validate())
}

func TestSpecValidate_Empty(t *testing.T) {
	assert.Error(t, (&Spec{}).Validate())
}
