package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"awsicons/internal/model"
)

func testRecords() []model.IconRecord {
	return []model.IconRecord{
		{Name: "Amazon-EC2", Category: "Arch_Compute", Classification: model.Architecture, Formats: []string{"png", "svg"}},
		{Name: "Amazon-S3", Category: "Arch_Storage", Classification: model.Architecture, Formats: []string{"svg"}},
		{Name: "Bucket", Category: "Res_Storage", Classification: model.Resource, Formats: []string{"svg"}},
	}
}

func TestGenerateReport_Summary(t *testing.T) {
	report := GenerateReport(testRecords(), false)

	assert.Contains(t, report, "Icons: 3")
	assert.Contains(t, report, "Architecture")
	assert.Contains(t, report, "Resource")
	assert.Contains(t, report, "png")
	assert.Contains(t, report, "svg")
	assert.NotContains(t, report, "Amazon-EC2", "non-verbose report has no per-icon lines")
}

func TestGenerateReport_VerboseListsIcons(t *testing.T) {
	report := GenerateReport(testRecords(), true)

	assert.Contains(t, report, "Amazon-EC2")
	assert.Contains(t, report, "Architecture - Arch_Compute")
	assert.Contains(t, report, "png, svg")
}

func TestGenerateReport_EmptyCatalog(t *testing.T) {
	report := GenerateReport(nil, false)

	assert.Contains(t, report, "Icons: 0")
	assert.Contains(t, report, "No icons found")
}
