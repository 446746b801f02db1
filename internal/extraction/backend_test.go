package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikael/cv-tailor/internal/llm"
	"github.com/mikael/cv-tailor/internal/types"
)

// fakeClient returns canned responses for backend calls.
type fakeClient struct {
	jsonResponse string
	jsonErr      error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.jsonResponse, f.jsonErr
}

func (f *fakeClient) Close() error { return nil }

var backendSegments = []Segment{
	{Text: "Strong experience with Go", Bullet: true},
	{Text: "You will mentor junior engineers", Bullet: true},
}

func TestBackendClassifierCoercesResponse(t *testing.T) {
	client := &fakeClient{jsonResponse: `{
		"segments": [
			{"index": 0, "kind": "skill", "skills": ["Go", "  "], "importance": "required"},
			{"index": 1, "kind": "responsibility", "skills": [], "importance": "implied"}
		]
	}`}

	out, err := (&BackendClassifier{Client: client}).Classify(context.Background(), backendSegments)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, SegmentSkill, out[0].Kind)
	assert.Equal(t, []string{"Go"}, out[0].Skills, "blank skills dropped")
	assert.Equal(t, types.ImportanceRequired, out[0].Importance)
	assert.Equal(t, SegmentResponsibility, out[1].Kind)
}

func TestBackendClassifierFencedJSON(t *testing.T) {
	client := &fakeClient{jsonResponse: "```json\n{\"segments\": [{\"index\": 0, \"kind\": \"skill\", \"skills\": [\"Go\"], \"importance\": \"required\"}]}\n```"}

	out, err := (&BackendClassifier{Client: client}).Classify(context.Background(), backendSegments)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, SegmentSkill, out[0].Kind)
	// Segment 1 was not classified by the backend; it keeps defaults.
	assert.Equal(t, SegmentOther, out[1].Kind)
	assert.Equal(t, types.ImportanceImplied, out[1].Importance)
}

func TestBackendClassifierInvalidKindsDefaulted(t *testing.T) {
	client := &fakeClient{jsonResponse: `{
		"segments": [{"index": 0, "kind": "magic", "skills": ["Go"], "importance": "critical"}]
	}`}

	out, err := (&BackendClassifier{Client: client}).Classify(context.Background(), backendSegments)
	require.NoError(t, err)
	assert.Equal(t, SegmentOther, out[0].Kind)
	assert.Equal(t, types.ImportanceImplied, out[0].Importance)
}

func TestBackendClassifierOutOfRangeIndices(t *testing.T) {
	client := &fakeClient{jsonResponse: `{
		"segments": [{"index": 99, "kind": "skill", "skills": ["Go"], "importance": "required"}]
	}`}

	_, err := (&BackendClassifier{Client: client}).Classify(context.Background(), backendSegments)
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestBackendClassifierMalformedJSON(t *testing.T) {
	client := &fakeClient{jsonResponse: "not json at all"}

	_, err := (&BackendClassifier{Client: client}).Classify(context.Background(), backendSegments)
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestBackendClassifierCallFailure(t *testing.T) {
	client := &fakeClient{jsonErr: errors.New("quota exceeded")}

	_, err := (&BackendClassifier{Client: client}).Classify(context.Background(), backendSegments)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classification call failed")
}

func TestBackendClassifierNilClient(t *testing.T) {
	_, err := (&BackendClassifier{}).Classify(context.Background(), backendSegments)
	require.Error(t, err)
}

func TestExtractRole(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"role_title": " Senior Backend Engineer ", "company": "Acme"}`}

	reqs := &types.JobRequirements{SourceText: "posting text"}
	require.NoError(t, ExtractRole(context.Background(), client, reqs))
	assert.Equal(t, "Senior Backend Engineer", reqs.RoleTitle)
	assert.Equal(t, "Acme", reqs.Company)
}

func TestExtractRoleMalformed(t *testing.T) {
	client := &fakeClient{jsonResponse: "oops"}

	reqs := &types.JobRequirements{SourceText: "posting text"}
	err := ExtractRole(context.Background(), client, reqs)
	require.Error(t, err)
	assert.Empty(t, reqs.RoleTitle)
}

func TestSeniorityEstimation(t *testing.T) {
	tests := []struct {
		text     string
		expected types.Seniority
	}{
		{"Principal Engineer opening", types.SeniorityStaff},
		{"Tech Lead for the payments team", types.SeniorityLead},
		{"Senior Software Engineer", types.SenioritySenior},
		{"Junior developer position", types.SeniorityJunior},
		{"Requires 8+ years of experience", types.SeniorityStaff},
		{"Requires 5 years of experience", types.SenioritySenior},
		{"Requires 3 years of experience", types.SeniorityMid},
		{"A great engineering role", types.SeniorityUnspecified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EstimateSeniority(tt.text), "text: %s", tt.text)
	}
}
