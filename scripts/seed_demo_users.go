package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type seedUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}

type seedResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func main() {
	var (
		baseURL  string
		count    int
		tag      string
		password string
		verify   bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "running server base url")
	flag.IntVar(&count, "count", 3, "number of demo users to register")
	flag.StringVar(&tag, "tag", "demo", "email local-part prefix")
	flag.StringVar(&password, "password", "moodsync-demo", "password for every demo user")
	flag.BoolVar(&verify, "login", true, "log in after registering")
	flag.Parse()

	if count <= 0 {
		log.Fatalf("count must be positive, got %d", count)
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := &http.Client{Timeout: 10 * time.Second}

	registered := 0
	for i := 1; i <= count; i++ {
		user := seedUser{
			FullName: fmt.Sprintf("Demo User %d", i),
			Email:    fmt.Sprintf("%s+%d@moodsync.local", tag, i),
			Age:      20 + i,
			Gender:   "unspecified",
			Password: password,
		}

		status, res, err := post(ctx, client, baseURL+"/register", user)
		if err != nil {
			log.Fatalf("register %s: %v", user.Email, err)
		}
		if status != http.StatusOK {
			log.Printf("skip %s: %d %s", user.Email, status, res.Message)
			continue
		}
		registered++

		if !verify {
			continue
		}
		status, res, err = post(ctx, client, baseURL+"/login", map[string]string{
			"email":    user.Email,
			"password": password,
		})
		if err != nil {
			log.Fatalf("login %s: %v", user.Email, err)
		}
		if status != http.StatusOK {
			log.Fatalf("login %s: %d %s", user.Email, status, res.Message)
		}
		log.Printf("seeded %s token=%s", user.Email, res.Token)
	}

	fmt.Printf("registered=%d requested=%d url=%s\n", registered, count, baseURL)
}

func post(ctx context.Context, client *http.Client, url string, body any) (int, seedResult, error) {
	var res seedResult
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, res, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, res, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, res, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return resp.StatusCode, res, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, res, nil
}
