package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
	"github.com/Alijeyrad/portfolio_backend/pkg/contactform"
)

func TestSendCommand(t *testing.T) {
	var got contactapi.Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"message":"Email sent successfully"}`))
	}))
	defer srv.Close()

	cmd := NewSendCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--endpoint", srv.URL,
		"--name", "Jane Doe",
		"--subject", "Hello",
		"--message", "I would like to talk about a project.",
		"--reply", "--email", "jane@example.com",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "Email sent successfully") {
		t.Errorf("output = %q", out.String())
	}
	if got.Email != "jane@example.com" || !got.WantsReply {
		t.Errorf("submission = %+v", got)
	}
}

func TestSendCommand_ValidationStopsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cmd := NewSendCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--endpoint", srv.URL, "--name", "Jane", "--subject", "Hi", "--message", "short"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() succeeded with a short message")
	}
	if called {
		t.Error("endpoint called for an invalid form")
	}
	if !strings.Contains(out.String(), "Message should be at least 10 characters") {
		t.Errorf("output = %q", out.String())
	}
}

func TestReportFailure_FieldOrder(t *testing.T) {
	verrs := contactform.Validate(contactform.Fields{WantsReply: true, Message: "short"})
	want := "The form has errors:\n" +
		"  --name: Please enter your name\n" +
		"  --email: Email is required if you want a reply\n" +
		"  --subject: Please enter a subject\n" +
		"  --message: Message should be at least 10 characters\n"

	for i := 0; i < 20; i++ {
		var out bytes.Buffer
		if err := reportFailure(&out, verrs); err == nil {
			t.Fatal("reportFailure() returned nil")
		}
		if out.String() != want {
			t.Fatalf("output = %q, want %q", out.String(), want)
		}
	}
}

func TestSendCommand_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to send email: Unauthorized","kind":"delivery_provider"}`))
	}))
	defer srv.Close()

	cmd := NewSendCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--endpoint", srv.URL, "--name", "Jane", "--subject", "Hi", "--message", "Hello there, world"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "Failed to send email: Unauthorized") {
		t.Errorf("Execute() error = %v", err)
	}
}
