// Command huffcode compresses a text file into a self-describing .bin
// archive, or reverses the process.
//
//	huffcode encode notes.txt    writes notes.bin
//	huffcode decode notes.bin    writes notes_decompressed.txt
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JasonJashari/huffman"
)

func main() {
	if len(os.Args) != 3 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = encodeFile(os.Args[2])
	case "decode":
		err = decodeFile(os.Args[2])
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s encode|decode <file>\n", os.Args[0])
	os.Exit(2)
}

func encodeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Trailing whitespace does not survive the round trip on purpose; the
	// archive stores the trimmed text.
	text := strings.TrimRight(string(raw), " \t\r\n")

	buf, err := huffman.EncodeString(text)
	if err != nil {
		return err
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".bin"
	if err := os.WriteFile(out, buf, 0o644); err != nil {
		return err
	}
	fmt.Println("Compressed, file can be found at:")
	fmt.Println(out)
	return nil
}

func decodeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	text, err := huffman.DecodeToString(raw)
	if err != nil {
		return err
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + "_decompressed.txt"
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return err
	}
	fmt.Println("Decompressed, file can be found at:")
	fmt.Println(out)
	return nil
}
