package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

var client = &http.Client{Timeout: 5 * time.Second}

// call sends body (if any) as JSON and returns the status and raw response.
func call(method, url string, body any) (int, []byte, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, err
}

// runDemo walks the API through create, update, paginate and delete.
func runDemo(base string) error {
	var created []todo
	for _, text := range []string{"buy milk", "walk dog", "write report"} {
		status, data, err := call(http.MethodPost, base+"/todos", map[string]string{"text": text})
		if err != nil {
			return err
		}
		if status != http.StatusCreated {
			return fmt.Errorf("create %q: status %d", text, status)
		}
		var t todo
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("create %q: %w", text, err)
		}
		created = append(created, t)
		fmt.Printf("  POST   /todos            -> %d %s\n", status, bytes.TrimSpace(data))
	}

	status, data, err := call(http.MethodPatch, base+"/todos/"+created[0].ID, map[string]bool{"completed": true})
	if err != nil {
		return err
	}
	fmt.Printf("  PATCH  /todos/{id}       -> %d %s\n", status, bytes.TrimSpace(data))

	status, data, err = call(http.MethodGet, base+"/todos?offset=1&limit=1", nil)
	if err != nil {
		return err
	}
	fmt.Printf("  GET    /todos?offset=1&limit=1 -> %d %s\n", status, bytes.TrimSpace(data))

	status, _, err = call(http.MethodDelete, base+"/todos/"+created[1].ID, nil)
	if err != nil {
		return err
	}
	fmt.Printf("  DELETE /todos/{id}       -> %d\n", status)

	status, _, err = call(http.MethodDelete, base+"/todos/"+created[1].ID, nil)
	if err != nil {
		return err
	}
	fmt.Printf("  DELETE /todos/{id} again -> %d\n", status)
	return nil
}
