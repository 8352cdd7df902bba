package form

import "mime/multipart"

// UploadError is the outcome code of a single file upload.
type UploadError int

const (
	// UploadOK means the file was received completely.
	UploadOK UploadError = iota
	// UploadNoFile means the field was posted without a file.
	UploadNoFile
	// UploadTooLarge means the file exceeded the allowed size.
	UploadTooLarge
	// UploadPartial means the file was only partially received.
	UploadPartial
)

// String returns the code name.
func (e UploadError) String() string {
	switch e {
	case UploadOK:
		return "ok"
	case UploadNoFile:
		return "no_file"
	case UploadTooLarge:
		return "too_large"
	case UploadPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Upload describes one uploaded file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Error       UploadError
	Header      *multipart.FileHeader
}

// String returns the file name.
func (u *Upload) String() string { return u.Filename }

// Uploads is the descriptor table supplied by the upload store, keyed by submit path.
type Uploads map[string][]*Upload

// File accepts a single uploaded file. Its value is a *Upload or nil.
type File struct {
	leaf
}

// NewFile creates a single-file control.
func NewFile(name string, opts ...ControlOption) *File {
	f := &File{leaf: newLeaf(name, opts)}
	f.init(f)
	return f
}

// Upload returns the accepted upload, if any.
func (f *File) Upload() *Upload {
	u, _ := f.value.(*Upload)
	return u
}

func (f *File) setValue(v any) {
	u, _ := v.(*Upload)
	if u == nil {
		f.value = nil
		return
	}
	f.value = u
}

func (f *File) reconcile(_ Values, p *pass) (Values, ChangedSet) {
	if f.frozen {
		return nil, nil
	}

	var accepted *Upload
	for _, u := range p.uploads[f.path] {
		if u != nil && u.Error == UploadOK {
			accepted = u
			break
		}
	}

	old := f.Upload()
	if accepted == nil {
		f.value = nil
		return f.accepted(nil, old != nil)
	}
	f.value = accepted
	return f.accepted(accepted, true)
}

// MultiFile accepts a list of uploaded files. Failed uploads are discarded;
// the value is nil when no upload succeeded.
type MultiFile struct {
	leaf
}

// NewMultiFile creates a multi-file control.
func NewMultiFile(name string, opts ...ControlOption) *MultiFile {
	m := &MultiFile{leaf: newLeaf(name, opts)}
	m.init(m)
	return m
}

// Uploads returns the accepted uploads.
func (m *MultiFile) Uploads() []*Upload {
	list, _ := m.value.([]*Upload)
	return list
}

func (m *MultiFile) setValue(v any) {
	list, _ := v.([]*Upload)
	if len(list) == 0 {
		m.value = nil
		return
	}
	m.value = list
}

func (m *MultiFile) reconcile(_ Values, p *pass) (Values, ChangedSet) {
	if m.frozen {
		return nil, nil
	}

	var accepted []*Upload
	for _, u := range p.uploads[m.path] {
		if u != nil && u.Error == UploadOK {
			accepted = append(accepted, u)
		}
	}

	old := m.Uploads()
	if len(accepted) == 0 {
		m.value = nil
		return m.accepted(nil, len(old) > 0)
	}
	m.value = accepted
	return m.accepted(accepted, true)
}
