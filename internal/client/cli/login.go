package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/platemate/platemate-sync/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	expiresAt := c.clock().Add(time.Duration(result.ExpiresIn) * time.Second)
	if err := c.session.SetSession(ctx, result.Token, result.UserID, expiresAt); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	// Tier мог смениться вместе с пользователем
	c.entitlements.ClearCache(ctx)

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Session expires: %s\n", expiresAt.Format(time.RFC3339))

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	// Сервисные токены и entitlement-кэш принадлежат сессии
	if err := c.tokens.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear service tokens: %w", err)
	}
	c.entitlements.ClearCache(ctx)

	c.io.Println("✓ Logged out.")
	return nil
}
