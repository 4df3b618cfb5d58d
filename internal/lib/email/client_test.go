package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "Ridelog <hello@ridelog.test>", logger: &logger}
}

// sampleData holds one set of template variables per template.
var sampleData = map[Template]map[string]string{
	TemplateWelcome: {
		"MemberFirstName": "Jane",
	},
}

func TestRender_SampleData(t *testing.T) {
	for name, data := range sampleData {
		t.Run(string(name), func(t *testing.T) {
			body, err := Render(name, data)
			require.NoError(t, err)
			assert.Contains(t, body, data["MemberFirstName"])
		})
	}
}

func TestRender_EscapesInput(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{"MemberFirstName": "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse email template missing")
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSender{}
	client := newTestClient(fake)

	require.NoError(t, client.SendWelcomeEmail("jane@example.com", "Jane"))

	require.NotNil(t, fake.got)
	assert.Equal(t, "Ridelog <hello@ridelog.test>", fake.got.From)
	assert.Equal(t, []string{"jane@example.com"}, fake.got.To)
	assert.Equal(t, WelcomeSubject, fake.got.Subject)
	assert.Contains(t, fake.got.Html, "Welcome aboard, Jane!")
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	client := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := client.SendWelcomeEmail("jane@example.com", "Jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email: rate limited")
}
