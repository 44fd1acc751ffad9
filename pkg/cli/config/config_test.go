package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/techflow/pkg/cli/config"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"github.com/secmon-lab/techflow/pkg/repository"

	_ "time/tzdata"
)

func TestAirtable_Validate(t *testing.T) {
	t.Run("names every missing variable", func(t *testing.T) {
		cfg := config.Airtable{Table: "Requests"}
		err := cfg.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("AIRTABLE_API_KEY")
		gt.S(t, err.Error()).Contains("AIRTABLE_BASE_ID")
		gt.False(t, cfg.IsConfigured())
	})

	t.Run("complete", func(t *testing.T) {
		cfg := config.Airtable{APIKey: "key", BaseID: "app123", Table: "Requests"}
		gt.NoError(t, cfg.Validate())

		client, err := cfg.Configure()
		gt.NoError(t, err)
		gt.NotNil(t, client)
	})
}

func TestLoadMapping(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := config.LoadMapping("")
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.Fields.RequestID, "Request ID")
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		content := `fields:
  assignee_name: Consultant
statuses:
  overdue: Overdue
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()

		cfg, err := config.LoadMapping(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.Fields.AssigneeName, "Consultant")
		gt.Equal(t, cfg.Fields.ServiceName, "Service Name")
		gt.Equal(t, cfg.Statuses.Overdue, types.RequestStatus("Overdue"))
		gt.Equal(t, cfg.Statuses.Closed, types.RequestStatusClosed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadMapping(filepath.Join(t.TempDir(), "none.yaml"))
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("configuration file not found")
	})

	t.Run("invalid mapping", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("fields:\n  status: \"\"\n"), 0o600)).Required()

		_, err := config.LoadMapping(path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid configuration")
	})

	t.Run("broken YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("fields: [\n"), 0o600)).Required()

		_, err := config.LoadMapping(path)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to parse YAML")
	})
}

func TestSMTP(t *testing.T) {
	t.Run("recipients", func(t *testing.T) {
		cfg := config.SMTP{To: " lead@example.com, ,ops@example.com "}
		gt.Equal(t, cfg.Recipients(), []string{"lead@example.com", "ops@example.com"})
	})

	t.Run("not configured", func(t *testing.T) {
		cfg := config.SMTP{Host: "smtp.example.com", Port: 587}
		gt.False(t, cfg.IsConfigured())

		mailer, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Nil(t, mailer)
	})

	t.Run("configured", func(t *testing.T) {
		cfg := config.SMTP{
			Host:     "smtp.example.com",
			Port:     587,
			User:     "bot",
			Password: "secret",
			From:     "bot@example.com",
			To:       "lead@example.com",
		}
		mailer, err := cfg.Configure()
		gt.NoError(t, err)
		gt.NotNil(t, mailer)
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := config.SMTP{
			Host:     "smtp.example.com",
			Port:     70000,
			User:     "bot",
			Password: "secret",
			From:     "bot@example.com",
			To:       "lead@example.com",
		}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestReport_Location(t *testing.T) {
	cfg := config.Report{Timezone: "Europe/Kyiv"}
	loc, err := cfg.Location()
	gt.NoError(t, err)
	gt.Equal(t, loc.String(), "Europe/Kyiv")

	cfg.Timezone = "Mars/Olympus"
	_, err = cfg.Location()
	gt.Error(t, err)
}

func TestSlack_NotConfigured(t *testing.T) {
	cfg := config.Slack{Channel: "C123"}
	notifier, err := cfg.Configure(context.Background(), "")
	gt.NoError(t, err)
	gt.Nil(t, notifier)
}

func TestFirestore_MemoryFallback(t *testing.T) {
	cfg := config.Firestore{}
	repo, err := cfg.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer repo.Close()

	_, ok := repo.(*repository.Memory)
	gt.True(t, ok)
}
