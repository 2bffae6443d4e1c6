package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	userIDs      map[string]int64
	elementIDs   map[string]int64
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:         tc,
		userIDs:    make(map[string]int64),
		elementIDs: make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a Cerberus server is running$`, s.aCerberusServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists$`, s.aUserExists)

	sc.Step(`^user "([^"]*)" is granted a new element "([^"]*)" in component "([^"]*)"$`, s.userIsGrantedANewElement)
	sc.Step(`^the grant should include (\d+) permissions$`, s.theGrantShouldIncludePermissions)

	sc.Step(`^I check whether user "([^"]*)" may "([^"]*)" element "([^"]*)"$`, s.iCheckWhetherUserMay)
	sc.Step(`^I check an unknown user against an unknown element for "([^"]*)"$`, s.iCheckAnUnknownUserAndElement)
	sc.Step(`^user "([^"]*)" should be allowed to "([^"]*)" element "([^"]*)"$`, s.userShouldBeAllowedTo)
	sc.Step(`^user "([^"]*)" should be denied "([^"]*)" on element "([^"]*)"$`, s.userShouldBeDenied)

	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the check result should be (true|false)$`, s.theCheckResultShouldBe)
}

func (s *StepsContext) aCerberusServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExists(name string) error {
	if err := s.tc.DB.Exec(`
		INSERT INTO users (name) VALUES (?) ON CONFLICT (name) DO NOTHING
	`, name).Error; err != nil {
		return err
	}

	var id int64
	if err := s.tc.DB.Raw(`SELECT id FROM users WHERE name = ?`, name).Scan(&id).Error; err != nil {
		return err
	}
	s.userIDs[name] = id
	return nil
}

func (s *StepsContext) userIsGrantedANewElement(userName, elemName, componentName string) error {
	userID, ok := s.userIDs[userName]
	if !ok {
		return fmt.Errorf("unknown user %q; declare it with a background step first", userName)
	}

	body, err := json.Marshal(map[string]interface{}{
		"component_name": componentName,
		"elem_name":      elemName,
		"user_id":        userID,
	})
	if err != nil {
		return err
	}

	resp, err := s.tc.HTTPClient.Post(s.tc.ServerURL+"/authz/elements", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := s.captureResponse(resp); err != nil {
		return err
	}

	if resp.StatusCode == http.StatusOK {
		var grant struct {
			ElemID int64 `json:"elem_id"`
		}
		if err := json.Unmarshal(s.responseBody, &grant); err != nil {
			return fmt.Errorf("failed to decode grant response: %w", err)
		}
		s.elementIDs[elemName] = grant.ElemID
	}
	return nil
}

func (s *StepsContext) theGrantShouldIncludePermissions(count int) error {
	var grant struct {
		PermissionIDs     []int64 `json:"permission_ids"`
		UserPermissionIDs []int64 `json:"user_permission_ids"`
	}
	if err := json.Unmarshal(s.responseBody, &grant); err != nil {
		return fmt.Errorf("failed to decode grant response: %w", err)
	}
	if len(grant.PermissionIDs) != count {
		return fmt.Errorf("expected %d permission ids, got %d", count, len(grant.PermissionIDs))
	}
	if len(grant.UserPermissionIDs) != count {
		return fmt.Errorf("expected %d user permission ids, got %d", count, len(grant.UserPermissionIDs))
	}
	return nil
}

func (s *StepsContext) iCheckWhetherUserMay(userName, operation, elemName string) error {
	userID, ok := s.userIDs[userName]
	if !ok {
		return fmt.Errorf("unknown user %q; declare it with a background step first", userName)
	}
	elemID, ok := s.elementIDs[elemName]
	if !ok {
		return fmt.Errorf("unknown element %q; grant it first", elemName)
	}
	return s.check(userID, elemID, operation)
}

func (s *StepsContext) iCheckAnUnknownUserAndElement(operation string) error {
	return s.check(999999, 999999, operation)
}

func (s *StepsContext) check(userID, elemID int64, operation string) error {
	params := url.Values{}
	params.Set("user_id", fmt.Sprintf("%d", userID))
	params.Set("elem_id", fmt.Sprintf("%d", elemID))
	params.Set("operation_name", operation)

	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/authz/check?" + params.Encode())
	if err != nil {
		return err
	}
	return s.captureResponse(resp)
}

func (s *StepsContext) userShouldBeAllowedTo(userName, operation, elemName string) error {
	if err := s.iCheckWhetherUserMay(userName, operation, elemName); err != nil {
		return err
	}
	if err := s.theResponseStatusShouldBe(http.StatusOK); err != nil {
		return err
	}
	return s.theCheckResultShouldBe("true")
}

func (s *StepsContext) userShouldBeDenied(userName, operation, elemName string) error {
	if err := s.iCheckWhetherUserMay(userName, operation, elemName); err != nil {
		return err
	}
	if err := s.theResponseStatusShouldBe(http.StatusOK); err != nil {
		return err
	}
	return s.theCheckResultShouldBe("false")
}

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response captured")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theCheckResultShouldBe(expected string) error {
	var check struct {
		HasPermission bool `json:"has_permission"`
	}
	if err := json.Unmarshal(s.responseBody, &check); err != nil {
		return fmt.Errorf("failed to decode check response: %w", err)
	}
	want := expected == "true"
	if check.HasPermission != want {
		return fmt.Errorf("expected has_permission=%v, got %v", want, check.HasPermission)
	}
	return nil
}

func (s *StepsContext) captureResponse(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	s.response = resp
	s.responseBody = body
	return nil
}
