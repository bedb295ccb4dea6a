package sa360

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/pkg/sftp"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"

	"saka/internal/domain/bulksheet"
)

// Client uploads finalized keyword bulksheets to SA360 over SFTP
type Client struct {
	addr      string
	sshConfig *ssh.ClientConfig
	logger    *zap.Logger
}

// NewClient creates a new SA360 SFTP client. Username and password must be
// present, the upload endpoint rejects anonymous sessions.
func NewClient(hostname string, port int, username, password string, logger *zap.Logger) (*Client, error) {
	if username == "" {
		return nil, fmt.Errorf("sa360 sftp username is not set")
	}
	if password == "" {
		return nil, fmt.Errorf("sa360 sftp password is not set")
	}

	sshConfig := &ssh.ClientConfig{
		User: username,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
		},
		// The upload endpoint is never in known_hosts on a fresh instance.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         30 * time.Second,
	}

	logger.Info("initialized sa360 client",
		zap.String("hostname", hostname),
		zap.String("username", username))

	return &Client{
		addr:      fmt.Sprintf("%s:%d", hostname, port),
		sshConfig: sshConfig,
		logger:    logger,
	}, nil
}

// UploadKeywords writes the bulksheet as a dated CSV file on the SA360 SFTP
// endpoint. The connection is opened per upload and closed before returning.
func (c *Client) UploadKeywords(ctx context.Context, table *bulksheet.Table) error {
	conn, err := ssh.Dial("tcp", c.addr, c.sshConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.addr, err)
	}
	defer conn.Close()

	sftpClient, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("failed to open sftp session: %w", err)
	}
	defer sftpClient.Close()

	filename := bulksheetFilename(time.Now())

	remote, err := sftpClient.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create remote file %s: %w", filename, err)
	}
	defer remote.Close()

	if err := writeCSV(remote, table); err != nil {
		return fmt.Errorf("failed to write bulksheet %s: %w", filename, err)
	}

	c.logger.Info("uploaded bulksheet to sa360",
		zap.String("filename", filename),
		zap.Int("rows", table.Len()))

	return nil
}

// bulksheetFilename embeds the upload date, e.g. saka_bulkfile_Jan_02_2006.csv
func bulksheetFilename(now time.Time) string {
	return fmt.Sprintf("saka_bulkfile_%s.csv", now.Format("Jan_02_2006"))
}

// writeCSV serializes the header and every record in bulksheet column order
func writeCSV(w io.Writer, table *bulksheet.Table) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(table.Columns()); err != nil {
		return err
	}

	return csvWriter.WriteAll(table.Records())
}
