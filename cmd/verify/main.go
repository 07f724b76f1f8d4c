package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// End-to-end smoke check against a running server: submit an application,
// log in as the seeded admin, and confirm the submission shows up in the
// admin list. Exits nonzero on the first failure.

var baseURL = "http://localhost:3000"

func post(path string, body interface{}, token string) (int, map[string]interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, decoded, nil
}

func getList(path string, token string) (int, []map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil, nil
	}
	var decoded []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, decoded, nil
}

func fail(msg string, detail interface{}) {
	fmt.Printf("❌ %s: %v\n", msg, detail)
	os.Exit(1)
}

func main() {
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}

	fmt.Println("1. Submitting Application...")
	status, body, err := post("/api/apply", map[string]string{
		"name":        "Test Check",
		"email":       "check@example.com",
		"phone":       "999999999",
		"destination": "norway",
		"position":    "pig_farming",
	}, "")
	if err != nil {
		fail("Application request failed", err)
	}
	if status != http.StatusCreated {
		fail("Application failed", body)
	}
	fmt.Println("✅ Application Submitted")

	fmt.Println("2. Logging in as Admin...")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "adminpassword123"
	}
	status, body, err = post("/api/login", map[string]string{
		"username": "admin",
		"password": password,
	}, "")
	if err != nil {
		fail("Login request failed", err)
	}
	token, _ := body["token"].(string)
	if status != http.StatusOK || token == "" {
		fail("Login failed", body)
	}
	fmt.Println("✅ Login Successful")

	fmt.Println("3. Fetching Applications...")
	status, list, err := getList("/api/applications", token)
	if err != nil {
		fail("List request failed", err)
	}
	if status != http.StatusOK {
		fail("Failed to fetch applications", status)
	}
	found := false
	for _, app := range list {
		if app["email"] == "check@example.com" {
			found = true
			break
		}
	}
	if !found {
		fail("Application not found in list", list)
	}
	fmt.Println("✅ Application Found in Admin List")

	fmt.Println("🎉 ALL CHECKS PASSED")
}
