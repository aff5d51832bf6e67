package web

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awsicons/internal/model"
)

func webRecords() []model.IconRecord {
	return []model.IconRecord{
		{Name: "Amazon-EC2", Category: "Arch_Compute", Classification: model.Architecture,
			Formats: []string{"png", "svg"}, RelPath: "/Arch_Compute/Amazon-EC2.png"},
		{Name: "Bucket", Category: "Res_Storage", Classification: model.Resource,
			Formats: []string{"svg"}, RelPath: "/Res_Storage/Bucket.svg"},
	}
}

func TestHandleIcons(t *testing.T) {
	handler := handleIcons(webRecords())

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest("GET", "/api/icons", nil))

	require.Equal(t, 200, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response struct {
		Icons   []model.IconRecord
		Count   int
		Version string
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, 2, response.Count)
	assert.Equal(t, model.Version, response.Version)
	require.Len(t, response.Icons, 2)
	assert.Equal(t, "Amazon-EC2", response.Icons[0].Name)
	assert.Equal(t, "/Arch_Compute/Amazon-EC2.png", response.Icons[0].RelPath)
}

func TestHandleReport(t *testing.T) {
	handler := handleReport(webRecords())

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest("GET", "/api/report", nil))

	require.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), "Icons: 2")
	assert.NotContains(t, rr.Body.String(), "Amazon-EC2")
}

func TestHandleReport_Verbose(t *testing.T) {
	handler := handleReport(webRecords())

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest("GET", "/api/report?verbose=1", nil))

	require.Equal(t, 200, rr.Code)
	assert.Contains(t, rr.Body.String(), "Amazon-EC2")
}
