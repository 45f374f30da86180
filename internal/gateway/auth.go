package gateway

import "context"

// RequestOTP asks the gateway to send a one-time password to the MSISDN.
func (c *Client) RequestOTP(ctx context.Context, msisdn string) (*OTPResponse, error) {
	var payload OTPResponse
	body := map[string]string{"msisdn": msisdn}
	if err := c.post(ctx, "/auth/request-otp", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SubmitOTP verifies the OTP and returns the active user on success.
func (c *Client) SubmitOTP(ctx context.Context, msisdn, otp string) (*LoginResponse, error) {
	var payload LoginResponse
	body := map[string]string{"msisdn": msisdn, "otp": otp}
	if err := c.post(ctx, "/auth/submit-otp", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ListUsers retrieves the linked accounts known to the gateway session.
func (c *Client) ListUsers(ctx context.Context) ([]LinkedUser, error) {
	var payload []LinkedUser
	if err := c.get(ctx, "/users", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SelectUser switches the active account.
func (c *Client) SelectUser(ctx context.Context, number int64) (*LoginResponse, error) {
	var payload LoginResponse
	body := map[string]int64{"number": number}
	if err := c.post(ctx, "/users/select", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
