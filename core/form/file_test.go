package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/core/form"
)

func TestFile_Reconcile(t *testing.T) {
	t.Parallel()

	avatar := form.NewFile("avatar")
	f := form.New().Add(form.NewGroup("profile").Add(avatar))

	ok := &form.Upload{Filename: "me.png", ContentType: "image/png", Size: 10}
	res, err := f.Reconcile(form.Values{}, form.Uploads{
		"profile[avatar]": {
			{Filename: "big.png", Error: form.UploadTooLarge},
			ok,
		},
	})
	require.NoError(t, err)

	assert.Same(t, ok, avatar.Upload())
	assert.Equal(t, form.Values{"profile": form.Values{"avatar": ok}}, res.Values)
	assert.True(t, res.Changed.Has("profile", "avatar"))

	res, err = f.Reconcile(form.Values{}, form.Uploads{
		"profile[avatar]": {{Error: form.UploadNoFile}},
	})
	require.NoError(t, err)
	assert.Nil(t, avatar.Upload())
	assert.True(t, res.Changed.Has("profile", "avatar"))

	res, err = f.Reconcile(form.Values{}, nil)
	require.NoError(t, err)
	assert.False(t, res.Changed.Has("profile", "avatar"))
}

func TestMultiFile_Reconcile(t *testing.T) {
	t.Parallel()

	docs := form.NewMultiFile("docs")
	f := form.New().Add(docs)

	a := &form.Upload{Filename: "a.pdf"}
	b := &form.Upload{Filename: "b.pdf"}
	res, err := f.Reconcile(form.Values{}, form.Uploads{
		"docs": {a, {Filename: "c.pdf", Error: form.UploadPartial}, b},
	})
	require.NoError(t, err)
	assert.Equal(t, []*form.Upload{a, b}, docs.Uploads())
	assert.True(t, res.Changed.Has("docs"))

	res, err = f.Reconcile(form.Values{}, form.Uploads{
		"docs": {{Error: form.UploadNoFile}},
	})
	require.NoError(t, err)
	assert.Nil(t, docs.Value())
	assert.Nil(t, res.Values["docs"])
	assert.True(t, res.Changed.Has("docs"))
}

func TestUploadError_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", form.UploadOK.String())
	assert.Equal(t, "too_large", form.UploadTooLarge.String())
	assert.Equal(t, "unknown", form.UploadError(42).String())
}
