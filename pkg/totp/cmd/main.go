package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dmitrymomot/otpkit/pkg/totp"
)

func main() {
	issuer := flag.String("issuer", "", "mint an enrollment URI for this issuer instead of an encryption key")
	label := flag.String("label", "", "account label for the minted enrollment URI")
	flag.Parse()

	if *issuer != "" || *label != "" {
		enroll(*issuer, *label)
		return
	}

	// Generate a base64-encoded encryption key for environment variables
	encodedKey, err := totp.GenerateEncodedEncryptionKey()
	if err != nil {
		log.Fatalf("Failed to generate encoded encryption key: %v", err)
	}

	fmt.Printf("Generated Encoded Encryption Key (for TOTP_ENCRYPTION_KEY env var): \n———\n%s\n———\n", encodedKey)
}

func enroll(issuer, label string) {
	key, err := totp.Enroll(issuer, label)
	if err != nil {
		log.Fatalf("Failed to enroll: %v", err)
	}
	code, err := totp.GenerateCode(key)
	if err != nil {
		log.Fatalf("Failed to derive a code: %v", err)
	}

	fmt.Printf("Enrollment URI: \n———\n%s\n———\nCurrent code: %s\n", key, code)
}
