package echoapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/aasim911-prog/department/apps/api/echo"
	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/grading"
	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
	logsvc "github.com/aasim911-prog/department/services/logger"
	"github.com/aasim911-prog/department/storage/database"
	inmemdb "github.com/aasim911-prog/department/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

func testConfig() *core.Config {
	return &core.Config{
		Env:       "TEST",
		AppName:   "Department",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: 24 * time.Hour,
			CORSOrigins:               []string{"*"},
			DisableReqLogs:            true,
		},
		Database: core.DatabaseConfig{Engine: core.EngineMemory},
	}
}

type testApp struct {
	server *echoapi.Server
	conf   *core.Config
	repos  *database.Repositories
}

func setup(t *testing.T) testApp {
	conf := testConfig()

	// set up DB & repos
	db, err := inmemdb.Open()
	require.NoError(t, err)
	repos := database.NewInMemRepositories(db)

	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// set up server
	server := echoapi.NewServer(echoapi.Deps{
		Conf:       conf,
		Logger:     logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf),
		UserSvc:    user.NewService(repos.Users),
		SubjectSvc: subject.NewService(repos.Subjects),
		MarkSvc:    mark.NewService(repos.Marks),
		GradingSvc: grading.NewService(grading.NewRepositoryStore(repos.Users, repos.Subjects, repos.Marks)),
		Validate:   validate,
		Translator: translator,
	})
	return testApp{server: server, conf: conf, repos: repos}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func (app testApp) serve(tt httpTest) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
	app.server.ServeHTTP(rec, req)
	return rec
}

func (app testApp) getToken(t *testing.T, usr user.User) string {
	token, err := echoapi.GenerateToken(echoapi.GetUserClaims(usr, app.conf), app.conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func marshallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code, "code")
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}
