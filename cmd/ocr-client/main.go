// Command ocr-client submits image files to the OCR server and prints the
// recognized text. Requests run through a bounded worker group with atomic
// progress counters, so every call in flight is tracked and joined before
// exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lexrey20/STDISCM/internal/logging"
	"github.com/lexrey20/STDISCM/proto"
)

func main() {
	serverAddr := flag.String("server", "localhost:50051", "OCR server address")
	deadline := flag.Duration("deadline", 120*time.Second, "per-request deadline")
	concurrency := flag.Int("concurrency", 4, "maximum requests in flight")
	lang := flag.String("lang", "eng", "recognition language hint")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ocr-client [flags] image...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *concurrency <= 0 {
		*concurrency = 1
	}

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	conn, err := grpc.Dial(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("failed to dial server", zap.String("addr", *serverAddr), zap.Error(err))
	}
	defer conn.Close()

	extractor := &imageTextExtractor{
		client:    proto.NewOCRServiceClient(conn),
		sessionID: "session-" + uuid.NewString(),
		deadline:  *deadline,
	}

	var (
		wg        sync.WaitGroup
		completed atomic.Int64
		failed    atomic.Int64
		sem       = make(chan struct{}, *concurrency)
		total     = len(files)
	)

	for i, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(batchID, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			resp := extractor.extractFromFile(batchID, path, *lang)
			done := completed.Add(1)
			if resp.GetOk() {
				fmt.Printf("[%d/%d] %s (%d ms)\n%s\n", done, total, path, resp.GetProcessingTimeMs(), resp.GetText())
			} else {
				failed.Add(1)
				fmt.Printf("[%d/%d] %s: %s\n", done, total, path, resp.GetMessage())
			}
		}(strconv.Itoa(i), path)
	}

	wg.Wait()
	logger.Info("batch finished",
		zap.Int("total", total),
		zap.Int64("failed", failed.Load()))
	if failed.Load() > 0 {
		os.Exit(1)
	}
}

type imageTextExtractor struct {
	client    proto.OCRServiceClient
	sessionID string
	deadline  time.Duration
}

// extractFromFile performs one remote call. Transport failures are mapped
// to an ok=false response so every outcome renders the same way.
func (e *imageTextExtractor) extractFromFile(batchID, path, lang string) *proto.ProcessImageResponse {
	data, err := os.ReadFile(path)
	if err != nil {
		return &proto.ProcessImageResponse{Ok: false, Message: "failed to read file: " + err.Error()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.deadline)
	defer cancel()

	resp, err := e.client.ProcessImage(ctx, &proto.ProcessImageRequest{
		ClientId: e.sessionID,
		BatchId:  batchID,
		Filename: path,
		Image:    data,
		Lang:     lang,
	})
	if err != nil {
		return &proto.ProcessImageResponse{Ok: false, Message: err.Error()}
	}
	return resp
}
