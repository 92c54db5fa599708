//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"rhythmdeck/cmd"
	"rhythmdeck/model"
)

const testBank = `# e2e bank
c4 c4 r4 c4
c2 c4. c8
c8 c8 c4 r2
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "rhythmdeck-e2e")
	if err != nil {
		panic(err.Error())
	}
	defer os.RemoveAll(dir)

	bankPath := filepath.Join(dir, "rhythms.txt")
	if err := os.WriteFile(bankPath, []byte(testBank), 0666); err != nil {
		panic(err.Error())
	}
	os.Setenv("BANK_PATH", bankPath)

	if err := cmd.LoadServeBank(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createJSONBody(v any) io.Reader {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestGenerateE2E(t *testing.T) {
	body := createJSONBody(model.GenerateRequestBody{Profile: "medium", Count: 5, Seed: 42})
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var genResponse model.GenerateResponse
	err := json.Unmarshal(respBody, &genResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("medium", genResponse.Profile)
	assert.Equal(int64(42), genResponse.Seed)
	assert.Equal(5, len(genResponse.Rhythms))
	for _, line := range genResponse.Rhythms {
		assert.NotEmpty(line)
	}
}

func TestGenerateIsDeterministicE2E(t *testing.T) {
	run := func() model.GenerateResponse {
		body := createJSONBody(model.GenerateRequestBody{Profile: "easy", Count: 10, Seed: 7})
		req := httptest.NewRequest(http.MethodPost, "/generate", body)
		w := httptest.NewRecorder()
		cmd.HandleGenerate(w, req)

		respBody, _ := io.ReadAll(w.Result().Body)
		var res model.GenerateResponse
		if err := json.Unmarshal(respBody, &res); err != nil {
			panic(err.Error())
		}
		return res
	}

	assert.Equal(t, run(), run())
}

func TestGenerateRejectsBadCountE2E(t *testing.T) {
	body := createJSONBody(model.GenerateRequestBody{Profile: "easy", Count: 0})
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestGenerateRejectsUnknownProfileE2E(t *testing.T) {
	body := createJSONBody(model.GenerateRequestBody{Profile: "expert", Count: 1})
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	w := httptest.NewRecorder()
	cmd.HandleGenerate(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)

	var errResponse model.ErrorResponse
	if err := json.Unmarshal(respBody, &errResponse); err != nil {
		panic(err.Error())
	}
	assert.NotEmpty(errResponse.Error)
}

func TestValidateE2E(t *testing.T) {
	body := createJSONBody(model.ValidateRequestBody{
		Profile: "easy",
		Lines: []string{
			"c4 c4 r4 c4",
			"c4 c4 c4",
			"c4 c3 r4 c4",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/validate", body)
	w := httptest.NewRecorder()
	cmd.HandleValidate(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var valResponse model.ValidateResponse
	if err := json.Unmarshal(respBody, &valResponse); err != nil {
		panic(err.Error())
	}

	assert.Equal(3, len(valResponse.Results))

	assert.True(valResponse.Results[0].OK)
	assert.Equal(1, valResponse.Results[0].Line)

	assert.False(valResponse.Results[1].OK)
	assert.Contains(valResponse.Results[1].Reason, "undershoot")

	assert.False(valResponse.Results[2].OK)
	assert.Equal(3, valResponse.Results[2].Line)
	assert.Contains(valResponse.Results[2].Reason, "c3")
}

func TestBankE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bank", nil)
	w := httptest.NewRecorder()
	cmd.HandleBank(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var bankResponse struct {
		Count   int      `json:"count"`
		Rhythms []string `json:"rhythms"`
	}
	if err := json.Unmarshal(respBody, &bankResponse); err != nil {
		panic(err.Error())
	}
	assert.Equal(3, bankResponse.Count)
	assert.Equal("c4 c4 r4 c4", bankResponse.Rhythms[0])
}
