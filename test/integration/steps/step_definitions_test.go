package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finmate/backend/config"
	"github.com/finmate/backend/internal/domain/entity"
	"github.com/finmate/backend/internal/infra/dependency"
	"github.com/finmate/backend/internal/integration/persistence/model"
	"github.com/finmate/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	serverPort   int
	accessToken  string
	refreshToken string
	userID       uuid.UUID
	friendToken  string
	friendID     uuid.UUID
	friendCID    string
	lastID       string
	invitationID string
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("EMAIL_WORKER_ENABLED", "false")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":              &model.UserModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"transactions":       &model.TransactionModel{},
			"goals":              &model.GoalModel{},
			"goal_fundings":      &model.GoalFundingModel{},
			"connected_goals":    &model.ConnectedGoalModel{},
			"goal_participants":  &model.ParticipantModel{},
			"goal_contributions": &model.ContributionModel{},
			"goal_stars":         &model.GoalStarModel{},
			"connections":        &model.ConnectionModel{},
			"accounts":           &model.AccountModel{},
			"ledger_books":       &model.LedgerBookModel{},
			"ledger_entries":     &model.LedgerEntryModel{},
			"notes":              &model.NoteModel{},
			"notifications":      &model.NotificationModel{},
			"email_queue":        &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Step(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)
	ctx.Step(`^another user is registered as "([^"]*)"$`, test.anotherUserIsRegisteredAs)
	ctx.Step(`^the two users are connected$`, test.theTwoUsersAreConnected)
	ctx.Step(`^I act as the other user$`, test.iActAsTheOtherUser)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.userID = uuid.Nil
	t.friendToken = ""
	t.friendID = uuid.Nil
	t.friendCID = ""
	t.lastID = ""
	t.invitationID = ""
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector, err := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			if err != nil {
				panic("failed to wire test server: " + err.Error())
			}

			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// register creates a user through the public API and returns the response body.
func (t *testContext) register(email string) (map[string]any, error) {
	payload := map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "Str0ngPass!",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Post(t.uri+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("registration of %s failed with status %d: %s", email, resp.StatusCode, raw)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (t *testContext) iAmRegisteredAs(email string) error {
	t.startServer()

	parsed, err := t.register(email)
	if err != nil {
		return err
	}

	t.accessToken, _ = parsed["access_token"].(string)
	t.refreshToken, _ = parsed["refresh_token"].(string)

	user, _ := parsed["user"].(map[string]any)
	if idStr, ok := user["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.userID = id
		}
	}
	return nil
}

func (t *testContext) anotherUserIsRegisteredAs(email string) error {
	t.startServer()

	parsed, err := t.register(email)
	if err != nil {
		return err
	}

	t.friendToken, _ = parsed["access_token"].(string)

	user, _ := parsed["user"].(map[string]any)
	if idStr, ok := user["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.friendID = id
		}
	}
	t.friendCID, _ = user["cid"].(string)
	return nil
}

func (t *testContext) theTwoUsersAreConnected() error {
	if t.userID == uuid.Nil || t.friendID == uuid.Nil {
		return errors.New("both users must be registered first")
	}

	connection := &model.ConnectionModel{
		ID:          uuid.New(),
		RequesterID: t.userID,
		RecipientID: t.friendID,
		Status:      string(entity.ConnectionStatusConnected),
		CreatedAt:   time.Now().UTC(),
	}
	return t.db.DbConn.Create(connection).Error
}

func (t *testContext) iActAsTheOtherUser() error {
	if t.friendToken == "" {
		return errors.New("no other user is registered")
	}
	t.accessToken = t.friendToken
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{friend_id}}", t.friendID.String())
	content = strings.ReplaceAll(content, "{{friend_cid}}", t.friendCID)
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID)
	content = strings.ReplaceAll(content, "{{invitation_id}}", t.invitationID)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created resource IDs so later steps can reference them.
	if idStr, ok := responseBody["id"].(string); ok {
		t.lastID = idStr
	}
	if idStr, ok := responseBody["connection_id"].(string); ok {
		t.lastID = idStr
	}

	// Capture the first pending connection request when the recipient lists them.
	if requests, ok := responseBody["requests"].([]any); ok && len(requests) > 0 {
		if request, ok := requests[0].(map[string]any); ok {
			if idStr, ok := request["connection_id"].(string); ok {
				t.lastID = idStr
			}
		}
	}

	// Capture the first pending invitation when the invitee lists them.
	if invitations, ok := responseBody["invitations"].([]any); ok && len(invitations) > 0 {
		if invitation, ok := invitations[0].(map[string]any); ok {
			if idStr, ok := invitation["participant_id"].(string); ok {
				t.invitationID = idStr
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue resolves a dot separated path inside a decoded JSON body.
// Numeric path segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		obj, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = obj[currentField]
	}

	return field
}
