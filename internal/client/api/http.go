package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkalinin/eduhub/internal/client/models"
	"github.com/dkalinin/eduhub/internal/filex"
	"github.com/dkalinin/eduhub/internal/logging"
)

// HTTPClient talks to the backend's REST API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL
// (e.g. "http://127.0.0.1:8000"). Timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// errorPayload is the union of the backend's failure bodies: list/detail
// endpoints use {"error": ...}, the profile-edit endpoint uses
// {"status": "error", "message": ...}.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (p errorPayload) text() string {
	if p.Error != "" {
		return p.Error
	}
	return p.Message
}

// do issues the request and decodes a successful JSON response into out
// (skipped when out is nil). A failed round trip maps to ErrUnavailable; a
// response with status >= 400 maps to *Error carrying the server's message.
func (c *HTTPClient) do(req *http.Request, out any) error {
	c.log.Debug(req.Context(), "api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		var p errorPayload
		_ = json.Unmarshal(body, &p)
		c.log.Debug(req.Context(), "api failure", "status", resp.StatusCode, "message", p.text())
		return &Error{Status: resp.StatusCode, Message: p.text()}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unexpected response shape: %w", err)
	}
	return nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// postMultipart sends fields plus, when photoPath is non-empty, the photo
// binary under the "profile_photo" part with its sniffed image MIME type.
func (c *HTTPClient) postMultipart(ctx context.Context, path string, fields map[string]string, photoPath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}

	if photoPath != "" {
		ct, err := filex.DetectImageType(photoPath)
		if err != nil {
			return fmt.Errorf("profile photo: %w", err)
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="profile_photo"; filename="%s"`, filepath.Base(photoPath)))
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return err
		}
		f, err := os.Open(photoPath)
		if err != nil {
			return fmt.Errorf("profile photo: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return fmt.Errorf("profile photo: %w", err)
		}
		f.Close()
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

func (c *HTTPClient) Register(ctx context.Context, r RegisterRequest) (string, error) {
	fields := map[string]string{
		"username":  r.Username,
		"email":     r.Email,
		"password":  r.Password,
		"password2": r.Password2,
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postMultipart(ctx, "/accounts/api/register/", fields, r.PhotoPath, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (int64, error) {
	in := map[string]string{"username": username, "password": password}

	var resp struct {
		UserID int64 `json:"userid"`
	}
	if err := c.postJSON(ctx, "/accounts/api/login/", in, &resp); err != nil {
		return 0, err
	}
	if resp.UserID == 0 {
		return 0, fmt.Errorf("unexpected response shape: missing userid")
	}
	return resp.UserID, nil
}

// profilePayload is the wire shape of the profile endpoint. ProfilePhoto is
// a pointer because the backend sends null for users without a photo.
type profilePayload struct {
	ID           int64   `json:"id"`
	IsSuperuser  bool    `json:"is_superuser"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfilePhoto *string `json:"profile_photo"`
	Level        int     `json:"level"`
	Experience   int     `json:"experience"`
}

func (c *HTTPClient) FetchProfile(ctx context.Context, userID int64) (*models.User, error) {
	var p profilePayload
	path := "/accounts/api/profile/?" + url.Values{"userid": {fmt.Sprint(userID)}}.Encode()
	if err := c.getJSON(ctx, path, &p); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		IsSuperuser: p.IsSuperuser,
		Level:       p.Level,
		Experience:  p.Experience,
	}
	if p.ProfilePhoto != nil {
		user.ProfilePhoto = models.ConfirmedPhoto(*p.ProfilePhoto)
	}
	if !user.Valid() {
		return nil, fmt.Errorf("unexpected response shape: invalid user record")
	}
	return user, nil
}

func (c *HTTPClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.getJSON(ctx, "/accounts/api/courses/", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	var course models.Course
	if err := c.getJSON(ctx, fmt.Sprintf("/accounts/api/course/%d/", courseID), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) CreateCourse(ctx context.Context, r CreateCourseRequest) (string, error) {
	in := map[string]string{
		"title":       r.Title,
		"description": r.Description,
		"tags":        r.Tags,
		"content":     r.Content,
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/accounts/api/courses/create/", in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) Enroll(ctx context.Context, courseID, userID int64) (string, error) {
	in := map[string]int64{"user_id": userID}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/accounts/api/courses/%d/enroll/", courseID), in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ListEnrolledCourses(ctx context.Context, userID int64) ([]models.CourseRef, error) {
	var resp struct {
		Courses []models.CourseRef `json:"courses"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/accounts/api/user/%d/courses/", userID), &resp); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

func (c *HTTPClient) EditProfile(ctx context.Context, userID int64, r EditProfileRequest) error {
	fields := map[string]string{
		"username": r.Username,
		"email":    r.Email,
	}

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/accounts/api/users/%d/edit/", userID)
	if err := c.postMultipart(ctx, path, fields, r.PhotoPath, &resp); err != nil {
		return err
	}

	// The edit endpoint can report failure inside a 200 response; the
	// status field is authoritative.
	if resp.Status != "success" {
		return &Error{Status: http.StatusOK, Message: resp.Message}
	}
	return nil
}

// achievementPayload is the wire shape of one achievement. The timestamp
// arrives as an ISO 8601 string, with or without a zone suffix.
type achievementPayload struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	DateEarned  string  `json:"date_earned"`
}

func parseEarnedDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (c *HTTPClient) ListAchievements(ctx context.Context, userID int64) ([]models.Achievement, error) {
	var resp struct {
		Achievements []achievementPayload `json:"achievements"`
	}
	path := fmt.Sprintf("/accounts/api/users/%d/achievements-view/", userID)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	achievements := make([]models.Achievement, 0, len(resp.Achievements))
	for _, p := range resp.Achievements {
		a := models.Achievement{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			DateEarned:  parseEarnedDate(p.DateEarned),
		}
		if p.Image != nil {
			a.Image = *p.Image
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}
