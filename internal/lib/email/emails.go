package email

// WelcomeSubject is the subject line of the membership welcome email.
const WelcomeSubject = "Welcome to Ridelog!"

// SendWelcomeEmail sends the welcome email to a newly registered member.
func (c *Client) SendWelcomeEmail(to, firstName string) error {
	// Keys must match what templates/welcome.html expects.
	data := map[string]string{
		"MemberFirstName": firstName,
	}

	return c.SendEmail(to, WelcomeSubject, TemplateWelcome, data)
}
