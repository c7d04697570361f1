package wizard

import (
	"testing"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultState(t *testing.T) {
	m := New()

	assert.Equal(t, StepIdle, m.Step())
	assert.Equal(t, NewBuildSpec(), m.Spec())
	assert.Empty(t, m.Spec().SelectedAddons)
}

func TestIntakeThroughDisplayMode_FullWalk(t *testing.T) {
	m := New()

	require.NoError(t, m.IntakeSelect("LEGO"))
	assert.Equal(t, StepCollect, m.Step())

	require.NoError(t, m.Confirm())
	require.NoError(t, m.ChooseCountTier("10-30 (Medium)"))
	require.NoError(t, m.ChooseDisplayMode(DisplayModeWall))

	assert.Equal(t, StepRecommend, m.Step())

	spec := m.Spec()
	assert.Equal(t, "LEGO", spec.CollectType)
	assert.Equal(t, "10-30 (Medium)", spec.CountTier)
	assert.Equal(t, DisplayModeWall, spec.DisplayMode)
	assert.Empty(t, spec.SelectedOption)
	assert.Equal(t, []string{}, spec.SelectedAddons)
}

func TestIntakeSelect_UnknownType_Rejected(t *testing.T) {
	m := New()

	err := m.IntakeSelect("Stamps")
	require.ErrorIs(t, err, common.ErrUnknownChoice)
	assert.Equal(t, StepIdle, m.Step())
}

func TestStart_OnlyFromIntro(t *testing.T) {
	m := New()

	require.ErrorIs(t, m.Start(), common.ErrInvalidTransition)

	require.NoError(t, m.Restart())
	require.NoError(t, m.Start())
	assert.Equal(t, StepCollect, m.Step())
	assert.Empty(t, m.Spec().CollectType, "start changes no fields")
}

func TestConfirm_WithoutCollectType_HoldsAtCollect(t *testing.T) {
	m := New()
	require.NoError(t, m.Restart())
	require.NoError(t, m.Start())

	err := m.Confirm()
	require.ErrorIs(t, err, common.ErrInvalidTransition)
	assert.Equal(t, StepCollect, m.Step())
}

func TestChange_ClearsCollectTypeAndHolds(t *testing.T) {
	m := New()
	require.NoError(t, m.IntakeSelect("HotWheels"))

	require.NoError(t, m.Change())

	assert.Equal(t, StepCollect, m.Step(), "does not step back to the intro")
	assert.Empty(t, m.Spec().CollectType)

	// Without a new collect type confirm stays rejected.
	require.ErrorIs(t, m.Confirm(), common.ErrInvalidTransition)
}

func TestChooseCountTier_ClosedChoiceSet(t *testing.T) {
	m := New()
	require.NoError(t, m.IntakeSelect("LEGO"))
	require.NoError(t, m.Confirm())

	err := m.ChooseCountTier("about a hundred")
	require.ErrorIs(t, err, common.ErrUnknownChoice)
	assert.Equal(t, StepCount, m.Step())

	require.NoError(t, m.ChooseCountTier("60+ (Gallery)"))
	assert.Equal(t, StepDisplay, m.Step())
}

func TestChooseDisplayMode_ClosedChoiceSet(t *testing.T) {
	m := New()
	require.NoError(t, m.IntakeSelect("LEGO"))
	require.NoError(t, m.Confirm())
	require.NoError(t, m.ChooseCountTier("1-10 (Small)"))

	require.ErrorIs(t, m.ChooseDisplayMode("Ceiling"), common.ErrUnknownChoice)
	assert.Equal(t, StepDisplay, m.Step())

	require.NoError(t, m.ChooseDisplayMode(DisplayModeFloor))
	assert.Equal(t, StepRecommend, m.Step())
}

func toRecommend(t *testing.T) *Machine {
	t.Helper()
	m := New()
	require.NoError(t, m.IntakeSelect("LEGO"))
	require.NoError(t, m.Confirm())
	require.NoError(t, m.ChooseCountTier("10-30 (Medium)"))
	require.NoError(t, m.ChooseDisplayMode(DisplayModeWall))
	return m
}

func TestSelectOption_ReplaceNeverMultiSelect(t *testing.T) {
	m := toRecommend(t)

	require.NoError(t, m.SelectOption("Modular Tower"))
	require.NoError(t, m.SelectOption("Modular Tower")) // idempotent
	assert.Equal(t, "Modular Tower", m.Spec().SelectedOption)

	require.NoError(t, m.SelectOption("Gallery Grid"))
	assert.Equal(t, "Gallery Grid", m.Spec().SelectedOption)

	require.ErrorIs(t, m.SelectOption("Invisible Shelf"), common.ErrUnknownChoice)
}

func TestSelectOption_BeforeRecommend_Rejected(t *testing.T) {
	m := New()
	require.NoError(t, m.IntakeSelect("LEGO"))

	require.ErrorIs(t, m.SelectOption("Modular Tower"), common.ErrInvalidTransition)
}

func TestToggleAddon_Involution(t *testing.T) {
	m := toRecommend(t)

	before := m.Spec().SelectedAddons

	require.NoError(t, m.ToggleAddon("led"))
	assert.True(t, m.Spec().HasAddon("led"))

	require.NoError(t, m.ToggleAddon("led"))
	assert.Equal(t, before, m.Spec().SelectedAddons)
}

func TestToggleAddon_SetSemantics(t *testing.T) {
	m := toRecommend(t)

	require.NoError(t, m.ToggleAddon("led"))
	require.NoError(t, m.ToggleAddon("lock"))
	require.NoError(t, m.ToggleAddon("led"))

	spec := m.Spec()
	assert.False(t, spec.HasAddon("led"))
	assert.True(t, spec.HasAddon("lock"))

	require.ErrorIs(t, m.ToggleAddon("spoiler"), common.ErrUnknownChoice)
}

func TestRestart_ResetsSpecAtomically(t *testing.T) {
	m := New()
	require.NoError(t, m.IntakeSelect("Mini Figures"))
	require.NoError(t, m.Confirm())

	require.NoError(t, m.Restart())

	assert.Equal(t, StepIntro, m.Step())
	assert.Equal(t, NewBuildSpec(), m.Spec())
}

func TestRestart_UnavailableAtTerminalStep(t *testing.T) {
	m := toRecommend(t)

	require.ErrorIs(t, m.Restart(), common.ErrInvalidTransition)
	assert.Equal(t, StepRecommend, m.Step())
}

func TestSpec_ReturnsCopy(t *testing.T) {
	m := toRecommend(t)
	require.NoError(t, m.ToggleAddon("led"))

	spec := m.Spec()
	spec.SelectedAddons[0] = "tampered"

	assert.True(t, m.Spec().HasAddon("led"))
}

func TestConfigString(t *testing.T) {
	m := toRecommend(t)
	assert.Empty(t, m.Spec().ConfigString(), "locked until a template is selected")

	require.NoError(t, m.SelectOption("Showcase Cabinet"))
	assert.Equal(t, "LEGO / 10-30 (Medium) / Wall", m.Spec().ConfigString())
}

func TestDisplayStep_ClampsToFour(t *testing.T) {
	m := toRecommend(t)
	assert.Equal(t, 4, m.DisplayStep())

	assert.Equal(t, 0, New().DisplayStep())
}
