package form_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/core/form"
	"github.com/dmitrymomot/forms/core/logger"
	"github.com/dmitrymomot/forms/core/validator"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	name := form.NewText("name", form.WithRules("required"))
	email := form.NewText("email", form.WithRules("required;email"))
	age := form.NewNumber("age").SetRange(18, 130)
	f := form.New().Add(name, email, age)

	_, err := f.Reconcile(form.Values{"name": "", "email": "nope", "age": "12"}, nil)
	require.NoError(t, err)

	invalid := f.Validate()
	require.Len(t, invalid, 3)
	assert.Equal(t, []string{"field is required"}, name.Errors())
	assert.Len(t, email.Errors(), 1)
	assert.Len(t, age.Errors(), 1)

	_, err = f.Reconcile(form.Values{"name": "Jane", "email": "jane@example.com", "age": "30"}, nil)
	require.NoError(t, err)
	assert.Empty(t, f.Validate())
	assert.Empty(t, name.Errors())
}

func TestValidate_LogsSubmitPath(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithJSONFormatter(), logger.WithLevel(slog.LevelDebug), logger.WithOutput(&buf))
	f := form.New(form.WithLogger(log)).Add(
		form.NewGroup("user").Add(form.NewText("email", form.WithRules("required"))),
	)

	_, err := f.Reconcile(form.Values{"user": form.Values{"email": ""}}, nil)
	require.NoError(t, err)
	require.Len(t, f.Validate(), 1)

	assert.Contains(t, buf.String(), `"msg":"control invalid"`)
	assert.Contains(t, buf.String(), `"control":"email"`)
	assert.Contains(t, buf.String(), `"submit_path":"user[email]"`)
}

func TestValidate_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	var second bool
	name := form.NewText("name", form.WithValidators(
		form.Required("name is required"),
		form.ValidatorFunc(func(form.Control) bool {
			second = true
			return true
		}),
	))
	f := form.New().Add(name)

	assert.Len(t, f.Validate(), 1)
	assert.Equal(t, []string{"name is required"}, name.Errors())
	assert.False(t, second)
}

func TestValidate_DefaultMessage(t *testing.T) {
	t.Parallel()

	name := form.NewText("name", form.WithValidators(form.ValidatorFunc(func(form.Control) bool {
		return false
	})))
	f := form.New().Add(name)

	assert.Len(t, f.Validate(), 1)
	assert.Equal(t, []string{"invalid value"}, name.Errors())
}

func TestValidate_GroupAfterChildren(t *testing.T) {
	t.Parallel()

	var groupRan bool
	password := form.NewText("password", form.WithRules("required"))
	confirm := form.NewText("confirm")
	group := form.NewGroup("account", form.WithValidators(form.ValidatorFunc(func(c form.Control) bool {
		groupRan = true
		if password.Value() != confirm.Value() {
			c.AddError("passwords do not match")
			return false
		}
		return true
	}))).Add(password, confirm)
	f := form.New().Add(group)

	_, err := f.Reconcile(form.Values{"account": map[string]any{"password": "", "confirm": "x"}}, nil)
	require.NoError(t, err)
	invalid := f.Validate()
	require.Len(t, invalid, 1)
	assert.Same(t, password, invalid[0])
	assert.False(t, groupRan)

	_, err = f.Reconcile(form.Values{"account": map[string]any{"password": "a", "confirm": "b"}}, nil)
	require.NoError(t, err)
	invalid = f.Validate()
	require.Len(t, invalid, 1)
	assert.Same(t, group, invalid[0])
	assert.Equal(t, []string{"passwords do not match"}, group.Errors())
}

func TestRules_CheckboxSet(t *testing.T) {
	t.Parallel()

	set := form.NewCheckboxSet("tags", numberedOptions(4), form.WithRules("required;max:2"))
	f := form.New().Add(set)

	_, err := f.Reconcile(form.Values{}, nil)
	require.NoError(t, err)
	assert.Len(t, f.Validate(), 1)

	_, err = f.Reconcile(form.Values{"tags": map[string]any{"1": "1", "2": "1", "3": "1"}}, nil)
	require.NoError(t, err)
	assert.Len(t, f.Validate(), 1)

	_, err = f.Reconcile(form.Values{"tags": map[string]any{"1": "1"}}, nil)
	require.NoError(t, err)
	assert.Empty(t, f.Validate())
}

func TestRules_UnknownRule(t *testing.T) {
	t.Parallel()

	_, err := form.Rules("required;bogus")
	assert.ErrorIs(t, err, validator.ErrUnknownRule)
	assert.Panics(t, func() { form.MustRules("bogus") })
}
