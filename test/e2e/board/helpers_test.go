package board_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	boardhttp "github.com/aussiebroadwan/taskboard/internal/board/http"
	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests for the board service. Each test spins up the full
 * router over a seeded in-memory store and talks to it through the SDK
 * client, the same way a browser frontend would.
 */

const (
	testIssuer = "taskboard-e2e"

	adminEmail = "admin@example.com"
	scrumEmail = "scrum@example.com"
	devEmail   = "dev@example.com"
)

// newTestServer wires the complete service stack behind an httptest server
// and returns an SDK client pointed at it. Every call gets a fresh seeded
// store, so tests are isolated.
func newTestServer(t *testing.T) *boardsdk.Client {
	t.Helper()

	st := memory.NewSeededStore()
	keys, err := jwtx.NewEphemeralEdDSA("e2e-1", testIssuer)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	sessions := st.Sessions()

	router := boardhttp.NewRouter(keys, keys, "e2e", st, sessions, logger)
	router.SessionService = &service.SessionService{
		Users:    st.Users(),
		Sessions: sessions,
		Signer:   keys,
		Issuer:   testIssuer,
		Delay:    service.NopDelayer{},
	}
	router.TaskService = &service.TaskService{Store: st}
	router.WorkspaceService = &service.WorkspaceService{Store: st}
	router.TeamService = &service.TeamService{Store: st}
	router.NotificationService = &service.NotificationService{Store: st}
	router.ActivityService = &service.ActivityService{Store: st}
	router.MeetingService = &service.MeetingService{Store: st}
	router.MetricsService = &service.MetricsService{Store: st}
	router.CalendarService = &service.CalendarService{Store: st}
	router.AssistantService = &service.AssistantService{Store: st, Delay: service.NopDelayer{}}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return boardsdk.NewClient(server.URL)
}

// login authenticates against the seed directory.
func login(t *testing.T, client *boardsdk.Client, email string) *boardsdk.Session {
	t.Helper()

	session, err := client.Login(context.Background(), email, memory.SeedPassword)
	require.NoError(t, err)
	return session
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
