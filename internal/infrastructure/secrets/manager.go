package secrets

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Names of the secrets the service reads at startup.
const (
	GoogleAdsAPICredentials = "google_ads_api_credentials"
	SA360SFTPPassword       = "sa360_sftp_password"
)

// Manager reads secret payloads from GCP Secret Manager
type Manager struct {
	client *secretmanager.Client
	logger *zap.Logger
}

// NewManager creates a new Secret Manager accessor
func NewManager(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*Manager, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}

	return &Manager{client: client, logger: logger}, nil
}

// AccessLatest returns the payload of the latest version of a secret
func (m *Manager) AccessLatest(ctx context.Context, projectID, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, name),
	}

	resp, err := m.client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", name, err)
	}

	m.logger.Info("retrieved secret", zap.String("secret", name))

	return string(resp.GetPayload().GetData()), nil
}

// Close releases the underlying client
func (m *Manager) Close() error {
	return m.client.Close()
}
