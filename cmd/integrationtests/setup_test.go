package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	account "lot-market/internal/accountService"
	catalog "lot-market/internal/catalogService"
	messaging "lot-market/internal/messagingService"
	model "lot-market/internal/models"
	profile "lot-market/internal/profileService"
	"lot-market/internal/repository"
	"lot-market/internal/server"
	"lot-market/internal/storage"
	sweeper "lot-market/internal/sweeperService"
	handler "lot-market/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testAdminSecret = "integration-admin-secret"
	testCronSecret  = "integration-cron-secret"
	testAdminEmail  = "admin@example.com"
	testAdminPass   = "correct-horse-battery"
	testJWTSecret   = "integration-jwt-secret"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing. The returned repo can be used to seed fixtures.
func SetupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()

	store, err := storage.NewDiskStore(t.TempDir(), "")
	require.NoError(t, err)

	accountSvc := account.NewAccountService(repo, testJWTSecret)
	require.NoError(t, accountSvc.Bootstrap(testAdminEmail, testAdminPass))
	adminUser, err := repo.GetUserByEmail(testAdminEmail)
	require.NoError(t, err)

	catalogSvc := catalog.NewCatalogService(repo, repo, repo, store, catalog.Policy{
		FreeLotQuota:     5,
		PremiumLotQuota:  20,
		ListDefaultLimit: 10,
	})
	messagingSvc := messaging.NewMessagingService(repo, repo)
	profileSvc := profile.NewProfileService(repo, repo, repo, repo)
	sweeperSvc := sweeper.NewSweeperService(repo, store)

	router := server.SetupRouter(server.Deps{
		Lots:     handler.NewLotHandler(catalogSvc),
		Auth:     handler.NewAuthHandler(accountSvc),
		Messages: handler.NewMessageHandler(messagingSvc),
		Profile:  handler.NewProfileHandler(profileSvc),
		Admin:    handler.NewAdminHandler(catalogSvc, func() string { return adminUser.UserID }),
		Cron:     handler.NewCronHandler(sweeperSvc),

		Readiness:   accountSvc,
		Verifier:    accountSvc,
		AdminSecret: testAdminSecret,
		CronSecret:  testCronSecret,
	})
	return router, repo
}

// SeedUser inserts a user directly into the repository and returns it.
func SeedUser(t *testing.T, repo *repository.MemoryRepo, userID string, premium bool) model.User {
	t.Helper()
	user := model.User{UserID: userID, IsPremium: premium}
	require.NoError(t, repo.CreateUser(user))
	return user
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, headers map[string]string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := ExecuteRequest(t, router, method, url, reqBody, headers)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// DataOf extracts the data object from a success envelope.
func DataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data should be an object: %v", resp)
	return data
}

// ListOf extracts the data array from a success envelope.
func ListOf(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "response data should be an array: %v", resp)
	return data
}
