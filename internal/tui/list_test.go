package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-file-vault/models"
)

const (
	me     models.Principal      = "0192a0b1-0000-7000-8000-00000000a11c"
	bob    models.Principal      = "0192a0b1-0000-7000-8000-000000000b0b"
	carol  models.Principal      = "0192a0b1-0000-7000-8000-000000000ca1"
	myRes  models.ResourceHandle = "0192a0b1-2222-7000-8000-000000000001"
	bobRes models.ResourceHandle = "0192a0b1-2222-7000-8000-000000000002"
)

func TestAccessLabel(t *testing.T) {
	tests := []struct {
		others int
		want   string
	}{
		{0, "Only You"},
		{1, "You & 1 other"},
		{2, "You & 2 others"},
		{17, "You & 17 others"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, accessLabel(tt.others))
	}
}

func TestOwnedRows(t *testing.T) {
	records := []models.FileRecord{
		{FileID: 1, FileName: "a.txt", Status: models.FileStatusUploaded},
		{FileID: 2, FileName: "b.pdf", Status: models.FileStatusUploaded, SharedWith: []models.PublicUser{{Principal: bob}}},
		{FileID: 3, FileName: "requested", Status: models.FileStatusPending, SharedWith: []models.PublicUser{{Principal: bob}, {Principal: carol}}},
	}

	rows := ownedRows(myRes, records)

	if assert.Len(t, rows, 3) {
		assert.Equal(t, "Only You", rows[0].access)
		assert.Equal(t, "You & 1 other", rows[1].access)
		assert.Equal(t, "You & 2 others", rows[2].access)
		assert.Equal(t, "1", rows[0].reference())
		assert.True(t, rows[0].downloadable())
		assert.False(t, rows[2].downloadable())
		assert.Equal(t, myRes, rows[1].ref.Resource)
	}
}

func TestSharedRows(t *testing.T) {
	shared := []models.SharedResource{{
		Resource: bobRes,
		Owner:    models.PublicUser{Principal: bob, Username: "bob"},
		Files: []models.FileSummary{
			{FileID: 7, FileName: "only-me.txt", SharedWith: []models.PublicUser{{Principal: me}}},
			{FileID: 8, FileName: "team.txt", SharedWith: []models.PublicUser{{Principal: me}, {Principal: carol}}},
		},
	}}

	rows := sharedRows(me, shared)

	if assert.Len(t, rows, 2) {
		// the owner always counts as one other reader
		assert.Equal(t, "You & 1 other", rows[0].access)
		assert.Equal(t, "You & 2 others", rows[1].access)
		assert.Equal(t, "bob", rows[0].owner)
		assert.Equal(t, bobRes.String()+"/7", rows[0].reference())
		assert.True(t, rows[0].downloadable())
		assert.False(t, rows[0].ref.Owned)
	}
}

func TestListModel_Move(t *testing.T) {
	m := newListModel()
	m.rows = make([]fileRow, 3)

	m.move(-1)
	assert.Equal(t, 0, m.idx)
	m.move(5)
	assert.Equal(t, 2, m.idx)

	_, ok := m.current()
	assert.True(t, ok)

	m.rows = nil
	m.move(0)
	_, ok = m.current()
	assert.False(t, ok)
}
