package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/blackboy404-RGB/smm/models"

	"github.com/gin-gonic/gin"
)

func TestGenerateContentVariations(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/content/generate", token, gin.H{
		"platform":     "instagram",
		"content_type": "post",
		"tone":         "Excited",
		"topic":        "our new launch",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	variations, ok := body["content"].([]any)
	if !ok {
		t.Fatalf("expected a content array, got %v", body["content"])
	}
	if len(variations) < 1 || len(variations) > 5 {
		t.Fatalf("expected 1 to 5 variations, got %d", len(variations))
	}
	for _, v := range variations {
		s, _ := v.(string)
		if !strings.Contains(s, "our new launch") {
			t.Fatalf("topic not substituted verbatim in %q", s)
		}
	}
}

func TestGenerateContentRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/content/generate", "", gin.H{
		"platform":     "instagram",
		"content_type": "post",
		"tone":         "Excited",
		"topic":        "our new launch",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCreateContentDefaultsToDraft(t *testing.T) {
	r, db := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/content", token, gin.H{
		"platform":     "instagram",
		"content_type": "post",
		"body":         "✨ our new launch",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	id, _ := body["id"].(float64)
	if id <= 0 {
		t.Fatalf("expected a positive id, got %v", body["id"])
	}

	var item models.Content
	if err := db.First(&item, int64(id)).Error; err != nil {
		t.Fatalf("load content: %v", err)
	}
	if item.Status != models.CONTENT_STATUS_DRAFT {
		t.Fatalf("expected draft status, got %q", item.Status)
	}
}

func TestListContentsNewestFirstAndScoped(t *testing.T) {
	r, db := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")
	registerUser(t, r, "other@example.com")

	var user, other models.User
	if err := db.Where("email = ?", "jane@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if err := db.Where("email = ?", "other@example.com").First(&other).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	at := func(d time.Duration) *time.Time {
		ts := time.Now().UTC().Add(d)
		return &ts
	}
	rows := []models.Content{
		{UserID: user.ID, Platform: "twitter", Body: "oldest", Status: "draft", CreatedAt: at(-3 * time.Hour)},
		{UserID: user.ID, Platform: "twitter", Body: "middle", Status: "draft", CreatedAt: at(-2 * time.Hour)},
		{UserID: user.ID, Platform: "twitter", Body: "newest", Status: "draft", CreatedAt: at(-1 * time.Hour)},
		{UserID: other.ID, Platform: "twitter", Body: "not yours", Status: "draft", CreatedAt: at(-30 * time.Minute)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed content: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/content", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var list []models.Content
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows for this user, got %d", len(list))
	}
	if list[0].Body != "newest" || list[1].Body != "middle" || list[2].Body != "oldest" {
		t.Fatalf("expected newest-first ordering, got %q %q %q", list[0].Body, list[1].Body, list[2].Body)
	}
}

func TestListContentsEmpty(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/content", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %q", w.Body.String())
	}
}

func TestGenerateImagesEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerUser(t, r, "jane@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/images/generate", token, gin.H{
		"prompt": "sunset over nairobi skyline at golden hour",
		"style":  "bold",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	images, ok := body["images"].([]any)
	if !ok || len(images) != 3 {
		t.Fatalf("expected exactly 3 images, got %v", body["images"])
	}
	for _, img := range images {
		s, _ := img.(string)
		if !strings.HasSuffix(s, "&text=sunset over nairobi ") {
			t.Fatalf("expected 20-char prompt preview appended, got %q", s)
		}
	}
}
