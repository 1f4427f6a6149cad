package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/catalog"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/dto"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/render"
	"github.com/jsamuelsen/chembond-tutor/internal/app"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/config"
)

const defaultQuizCount = 5

// newTutorRouter wires every tutor handler against the embedded catalog.
func newTutorRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	chat := app.NewChatService(app.ChatServiceConfig{Molecules: cat, Glossary: cat, Logger: logger})
	quiz := app.NewQuizService(app.QuizServiceConfig{Bank: cat, Shuffler: app.NewSeededShuffler(7), Logger: logger})
	molecules := app.NewMoleculeService(app.MoleculeServiceConfig{
		Catalog:  cat,
		Renderer: render.NewSVGRenderer(),
		Logger:   logger,
	})

	router := gin.New()
	api := router.Group("/api/v1")
	NewChatHandler(chat).RegisterChatRoutes(api)
	NewQuizHandler(quiz, defaultQuizCount).RegisterQuizRoutes(api)
	NewMoleculeHandler(molecules, cat, cat).RegisterMoleculeRoutes(api)

	return router
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestChatHandler_Chat(t *testing.T) {
	router := newTutorRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantReply  string
		wantCode   string
	}{
		{
			name:       "molecule mention",
			body:       `{"message":"Tell me about H2O"}`,
			wantStatus: http.StatusOK,
			wantReply:  "Molecule: H2O",
		},
		{
			name:       "concept keyword",
			body:       `{"message":"what is ionic bonding?"}`,
			wantStatus: http.StatusOK,
			wantReply:  "transfer",
		},
		{
			name:       "fallback",
			body:       `{"message":"hello"}`,
			wantStatus: http.StatusOK,
			wantReply:  app.FallbackReply,
		},
		{
			name:       "blank message",
			body:       `{"message":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "malformed body",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/chat", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Error.Code)

				return
			}

			var resp dto.ChatResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Reply, tt.wantReply)
		})
	}
}

func TestQuizHandler_Generate(t *testing.T) {
	router := newTutorRouter(t)

	tests := []struct {
		name      string
		body      string
		wantItems int
	}{
		{"default count", `{"topic":"Ionic Bonding"}`, defaultQuizCount},
		{"explicit count", `{"topic":"VSEPR Theory","count":3}`, 3},
		{"zero clamps to one", `{"topic":"Ionic Bonding","count":0}`, 1},
		{"large clamps to ten", `{"topic":"Ionic Bonding","count":99}`, 10},
		{"unknown topic", `{"topic":"Alchemy","count":2}`, 2},
		{"blank topic", `{"topic":"","count":4}`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/quiz", tt.body)
			require.Equal(t, http.StatusOK, w.Code)

			var resp dto.QuizResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Len(t, resp.Items, tt.wantItems)

			for _, it := range resp.Items {
				require.NotEmpty(t, it.Options)
				assert.GreaterOrEqual(t, it.CorrectIndex, 0)
				assert.Less(t, it.CorrectIndex, len(it.Options))
			}
		})
	}
}

func TestQuizHandler_Generate_NonIntegerCount(t *testing.T) {
	router := newTutorRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/quiz", `{"topic":"Ionic Bonding","count":"three"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeBadRequest, resp.Error.Code)
}

func TestQuizHandler_Topics(t *testing.T) {
	router := newTutorRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/quiz/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"topics":["Ionic Bonding","Covalent Bonding","VSEPR Theory"]}`, w.Body.String())
}

func TestMoleculeHandler_Analyze(t *testing.T) {
	router := newTutorRouter(t)

	t.Run("known molecule", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/molecule/analyze", `{"formula":" h2o "}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.MoleculeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "H2O", resp.Formula)
		require.NotNil(t, resp.Name)
		assert.Equal(t, "Water", *resp.Name)
		require.NotNil(t, resp.BondAngle)
		assert.InDelta(t, 104.5, *resp.BondAngle, 1e-9)
		assert.True(t, strings.HasPrefix(resp.LewisSVG, render.DataURIPrefix))
	})

	t.Run("unknown formula", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/molecule/analyze", `{"formula":"xe"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, "XE", raw["formula"])
		assert.Nil(t, raw["name"])
		assert.Nil(t, raw["bond_angle"])
		assert.Nil(t, raw["shape"])
	})

	t.Run("blank formula", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/molecule/analyze", `{"formula":""}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "formula")
	})
}

func TestMoleculeHandler_Listings(t *testing.T) {
	router := newTutorRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/molecules", "")
	require.Equal(t, http.StatusOK, w.Code)

	var molecules dto.MoleculesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &molecules))
	require.NotEmpty(t, molecules.Molecules)
	assert.Equal(t, "H2O", molecules.Molecules[0].Formula)

	w = doJSON(router, http.MethodGet, "/api/v1/concepts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var concepts dto.ConceptsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &concepts))
	require.NotEmpty(t, concepts.Concepts)
	assert.Equal(t, "ionic", concepts.Concepts[0].Keyword)
}

func TestStatusHandler(t *testing.T) {
	tests := []struct {
		name     string
		db       config.DatabaseConfig
		wantURL  string
		wantName string
	}{
		{"nothing set", config.DatabaseConfig{}, "❌ Not Set", "❌ Not Set"},
		{"url only", config.DatabaseConfig{URL: "postgres://u:p@db/x"}, "✅ Set", "❌ Not Set"},
		{"both set", config.DatabaseConfig{URL: "postgres://db", Name: "tutor"}, "✅ Set", "✅ Set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			NewStatusHandler(tt.db).RegisterStatusRoutesOnEngine(router)

			w := doJSON(router, http.MethodGet, "/test", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), "postgres")

			var resp dto.StatusReport
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "✅ Running", resp.Backend)
			assert.Equal(t, "❌ Not Used", resp.Database)
			assert.Equal(t, tt.wantURL, resp.DatabaseURL)
			assert.Equal(t, tt.wantName, resp.DatabaseName)
		})
	}
}

func TestStatusHandler_Root(t *testing.T) {
	router := gin.New()
	NewStatusHandler(config.DatabaseConfig{}).RegisterStatusRoutesOnEngine(router)

	w := doJSON(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ChemBond Tutor API is running"}`, w.Body.String())
}
