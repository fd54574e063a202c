//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type classListResponse struct {
	Data []struct {
		Class       string `json:"class"`
		DisplayName string `json:"display_name"`
		Base        struct {
			HP int `json:"hp"`
			MP int `json:"mp"`
		} `json:"base"`
	} `json:"data"`
}

func TestListClasses(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/character/classes", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var classes classListResponse
	if err := json.Unmarshal(body, &classes); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(classes.Data) != 3 {
		t.Errorf("Expected 3 classes, got %d", len(classes.Data))
	}

	found := map[string]bool{}
	for _, c := range classes.Data {
		found[c.Class] = true
	}
	for _, want := range []string{"WARRIOR", "ARCHER", "MAGE"} {
		if !found[want] {
			t.Errorf("Expected class %s in list", want)
		}
	}
}

func TestCreateCharacter(t *testing.T) {
	request := map[string]interface{}{
		"nickname": "StagingHero",
		"class":    "WARRIOR",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/character", request)

	// 201 for success, 409 if the save slot is already occupied
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		t.Errorf("Unexpected status: %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestGetCharacter(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/character", nil)

	if resp.StatusCode == http.StatusNotFound {
		t.Skip("No character yet - expected on a fresh deployment")
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestListQuests(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/quests", nil)

	if resp.StatusCode == http.StatusNotFound {
		t.Skip("No character yet - expected on a fresh deployment")
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestShopCatalog(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/shop?category=ALL", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var catalog struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &catalog); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(catalog.Data) == 0 {
		t.Error("Expected at least one item in the shop catalog")
	}
}

func TestVersionEndpoint(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/version", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}
