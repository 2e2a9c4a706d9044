package api

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jashkothari/foliobot/internal/chat"
	"github.com/jashkothari/foliobot/internal/composer"
	"github.com/jashkothari/foliobot/internal/profile"
)

func newTestMCPDeps(t *testing.T) (MCPDeps, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "personal_info.json")
	if err := os.WriteFile(path, []byte(testProfileJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	store := profile.NewStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("loading profile: %v", err)
	}

	compose := func(query string) (string, error) {
		p, err := store.Get()
		if err != nil {
			return "", err
		}
		return composer.Compose(p, query), nil
	}
	sess := chat.NewSession("hello", compose, &stubGenerator{response: "an answer"})

	return MCPDeps{Store: store, Session: sess, Version: "test"}, path
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPTool_Ask(t *testing.T) {
	deps, _ := newTestMCPDeps(t)
	handler := mcpAsk(deps)

	result, err := handler(context.Background(), makeCallToolRequest("ask", map[string]interface{}{
		"question": "what do you do?",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}
	if got := toolText(t, result); got != "an answer" {
		t.Errorf("answer = %q", got)
	}

	// The MCP turn lands in the shared transcript.
	if n := len(deps.Session.Transcript()); n != 3 {
		t.Errorf("transcript has %d entries, want 3", n)
	}
}

func TestMCPTool_Ask_MissingQuestion(t *testing.T) {
	deps, _ := newTestMCPDeps(t)
	handler := mcpAsk(deps)

	result, err := handler(context.Background(), makeCallToolRequest("ask", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for missing question")
	}
}

func TestMCPTool_GetProfile(t *testing.T) {
	deps, _ := newTestMCPDeps(t)
	handler := mcpGetProfile(deps)

	result, err := handler(context.Background(), makeCallToolRequest("get_profile", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(toolText(t, result)), &p); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if p.Name != "Jash Kothari" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestMCPTool_ReloadProfile(t *testing.T) {
	deps, path := newTestMCPDeps(t)
	handler := mcpReloadProfile(deps)

	// Break the file: reload must report the failure.
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err := handler(context.Background(), makeCallToolRequest("reload_profile", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError for broken profile file")
	}

	// Fix the file: reload succeeds.
	if err := os.WriteFile(path, []byte(testProfileJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	result, err = handler(context.Background(), makeCallToolRequest("reload_profile", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool error: %s", toolText(t, result))
	}
}

func TestMCPResource_Profile(t *testing.T) {
	deps, _ := newTestMCPDeps(t)
	handler := mcpResourceProfile(deps)

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "portfolio://profile"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", text.MIMEType)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(text.Text), &p); err != nil {
		t.Fatalf("decoding profile: %v", err)
	}
	if p.Occupation != "Software Engineer" {
		t.Errorf("Occupation = %q", p.Occupation)
	}
}
