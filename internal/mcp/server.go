package mcp

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/config"
	"github.com/dikondaashish/all-in-one-career-sub004/internal/document"
	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
)

// Server exposes the document extraction service as MCP tools.
type Server struct {
	config     *config.Config
	docService *document.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, docService *document.Service) (*Server, error) {
	if docService == nil {
		return nil, fmt.Errorf("docService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:     cfg,
		docService: docService,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	extractTool := mcp.NewTool(
		"extract_document_text",
		mcp.WithDescription("Extract plain text from a resume or job-description document (PDF, DOCX, TXT)"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document"),
		),
		mcp.WithString("mime",
			mcp.Description("Declared MIME type (falls back to the file extension when empty)"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleExtractDocumentText)

	detectTool := mcp.NewTool(
		"detect_document_format",
		mcp.WithDescription("Classify a document by MIME type and filename without decoding it"),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("File name, used for extension matching"),
		),
		mcp.WithString("mime",
			mcp.Description("Declared MIME type (takes precedence over the extension)"),
		),
	)
	s.mcpServer.AddTool(detectTool, s.handleDetectDocumentFormat)

	infoTool := mcp.NewTool(
		"extractor_info",
		mcp.WithDescription("Get extraction service limits and supported formats"),
	)
	s.mcpServer.AddTool(infoTool, s.handleExtractorInfo)
}

// Handler functions

func (s *Server) handleExtractDocumentText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mime := ""
	if m, ok := request.GetArguments()["mime"].(string); ok {
		mime = m
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot read file: %v", err)), nil
	}

	req := extract.ExtractionRequest{
		Bytes:        data,
		DeclaredMime: mime,
		FileName:     path,
		SizeBytes:    int64(len(data)),
	}

	result, xerr := s.docService.Extract(ctx, req)
	if xerr != nil {
		return mcp.NewToolResultError(formatClientError(xerr)), nil
	}

	return mcp.NewToolResultText(formatExtractionResult(result)), nil
}

func (s *Server) handleDetectDocumentFormat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName, err := request.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mime := ""
	if m, ok := request.GetArguments()["mime"].(string); ok {
		mime = m
	}

	format, xerr := extract.DetectFormat(mime, fileName)
	if xerr != nil {
		return mcp.NewToolResultError(formatClientError(xerr)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Format: %s", format)), nil
}

func (s *Server) handleExtractorInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Document Text Extraction Service\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Max upload size: %d bytes\n", s.docService.MaxFileSize())
	text += fmt.Sprintf("Per-attempt decode budget: %dms\n", s.config.TimeoutMs)
	text += fmt.Sprintf("Fallback decoder enabled: %t\n", s.config.EnableFallback)
	text += fmt.Sprintf("Scanned-PDF threshold: %d characters\n", s.config.ScannedThreshold)
	text += "Supported formats: PDF (.pdf), DOCX (.docx), plain text (.txt / text/*)\n"
	text += "Legacy .doc is rejected; convert to DOCX first.\n"
	return mcp.NewToolResultText(text), nil
}

// Formatting

// formatClientError renders only the fixed client mapping for the error
// kind; decoder internals never cross this boundary.
func formatClientError(xerr *extract.ExtractionError) string {
	resp := extract.Respond(xerr.Kind)
	return fmt.Sprintf("%d %s: %s", resp.Status, resp.Code, resp.Message)
}

func formatExtractionResult(result *extract.ExtractionResult) string {
	text := fmt.Sprintf("Format: %s\n", result.SourceFormat)
	if result.PageCount > 0 {
		text += fmt.Sprintf("Pages: %d\n", result.PageCount)
	}
	text += fmt.Sprintf("Characters: %d\n", len(result.Text))
	text += "\nContent:\n"
	text += result.Text
	return text
}

// Run starts the MCP server in the configured mode.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode.
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting extraction server in stdio mode")
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode.
func (s *Server) runServerMode(ctx context.Context) error {
	sse := server.NewSSEServer(s.mcpServer)
	log.Printf("Starting extraction server on %s", s.config.Address())

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(s.config.Address())
	}()

	select {
	case <-ctx.Done():
		return sse.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	}
}
