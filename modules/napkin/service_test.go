package napkin

import (
	"context"
	"encoding/base64"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestInterpretImageResponseEmptyData(t *testing.T) {
	s := &Service{}

	_, genErr := s.interpretImageResponse(context.Background(), openai.ImageResponse{})
	if genErr == nil {
		t.Fatal("expected error for empty response data")
	}
	if genErr.code != ErrCodeNoImageReturned {
		t.Fatalf("unexpected error code: %s", genErr.code)
	}
	if genErr.message != "No image returned. Try a different theme or simplify extras." {
		t.Fatalf("unexpected message: %s", genErr.message)
	}
}

func TestInterpretImageResponseB64(t *testing.T) {
	s := &Service{}
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	resp := openai.ImageResponse{
		Data: []openai.ImageResponseDataInner{
			{B64JSON: base64.StdEncoding.EncodeToString(payload)},
		},
	}

	images, genErr := s.interpretImageResponse(context.Background(), resp)
	if genErr != nil {
		t.Fatalf("unexpected error: %s", genErr.message)
	}
	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(images))
	}
	if string(images[0]) != string(payload) {
		t.Fatal("decoded bytes do not match payload")
	}
}

func TestInterpretImageResponseUnrecognizedFormat(t *testing.T) {
	s := &Service{}

	// base64도 URL도 없는 아이템만 있으면 명시적 에러
	resp := openai.ImageResponse{
		Data: []openai.ImageResponseDataInner{{RevisedPrompt: "something"}},
	}

	_, genErr := s.interpretImageResponse(context.Background(), resp)
	if genErr == nil {
		t.Fatal("expected error for unrecognized item")
	}
	if genErr.code != ErrCodeUnrecognizedFormat {
		t.Fatalf("unexpected error code: %s", genErr.code)
	}
	if genErr.message != "Unrecognized response format." {
		t.Fatalf("unexpected message: %s", genErr.message)
	}
}

func TestInterpretImageResponseAllItemsFailDecode(t *testing.T) {
	s := &Service{}

	// payload는 있었지만 전부 decode 실패 - 포맷 오류가 아니라 생성 실패로 분류
	resp := openai.ImageResponse{
		Data: []openai.ImageResponseDataInner{
			{B64JSON: "!!!not-base64!!!"},
			{B64JSON: "@@@also-bad@@@"},
		},
	}

	_, genErr := s.interpretImageResponse(context.Background(), resp)
	if genErr == nil {
		t.Fatal("expected error when every item fails to decode")
	}
	if genErr.code != ErrCodeGenerationFailed {
		t.Fatalf("decode failures must not be labeled as format errors, got code: %s", genErr.code)
	}
}

func TestInterpretImageResponseSkipsBadBase64(t *testing.T) {
	s := &Service{}
	payload := []byte("valid-bytes")

	resp := openai.ImageResponse{
		Data: []openai.ImageResponseDataInner{
			{B64JSON: "!!!not-base64!!!"},
			{B64JSON: base64.StdEncoding.EncodeToString(payload)},
		},
	}

	images, genErr := s.interpretImageResponse(context.Background(), resp)
	if genErr != nil {
		t.Fatalf("unexpected error: %s", genErr.message)
	}
	if len(images) != 1 {
		t.Fatalf("expected bad item skipped, got %d images", len(images))
	}
}
