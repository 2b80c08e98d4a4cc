package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/quicwg/qpack-go/hc"
	"github.com/quicwg/qpack-go/internal/qif"
)

var (
	encAckEachBlock  bool
	encMaxBlocked    int
	encTableCapacity uint32
	encNoIndex       bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [in.qif [out.bin]]",
	Short: "Encode a QIF header list file into a framed QPACK byte stream",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().BoolVarP(&encAckEachBlock, "ack", "a", false, "acknowledge every block immediately, as if the decoder kept up")
	encodeCmd.Flags().IntVarP(&encMaxBlocked, "blocked", "b", 100, "maximum number of streams the encoder may risk blocking")
	encodeCmd.Flags().Uint32VarP(&encTableCapacity, "table-capacity", "t", 4096, "dynamic table capacity in bytes")
	encodeCmd.Flags().BoolVar(&encNoIndex, "no-index", false, "never add entries to the dynamic table")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := io.Writer(os.Stdout)
	if len(args) > 1 {
		f, err := os.OpenFile(args[1], os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	logger := log.New(io.Discard, "", log.Lmicroseconds)
	if verbose {
		logger = log.New(os.Stderr, "encode: ", log.Lmicroseconds)
	}

	enc := hc.NewQpackEncoder(hc.TableCapacity(encTableCapacity), encMaxBlocked)
	enc.SetLogger(logger)

	r := qif.NewReader(in)
	fw := qif.NewFrameWriter(out)

	var streamID uint64
	for {
		block, err := r.ReadHeaderBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(block) == 0 {
			continue
		}
		streamID++
		encBytes, hdrBytes, err := encodeBlock(enc, streamID, block)
		if err != nil {
			return err
		}
		logger.Printf("stream %d: %d header fields, %d enc bytes, %d hdr bytes", streamID, len(block), len(encBytes), len(hdrBytes))
		if err := fw.WriteFrame(0, encBytes); err != nil {
			return err
		}
		if err := fw.WriteFrame(streamID, hdrBytes); err != nil {
			return err
		}
		if encAckEachBlock {
			if err := enc.AcknowledgeHeaderBlock(streamID); err != nil {
				return err
			}
		}
	}
	return fw.Flush()
}

// encodeBlock drives one header block through Encode/EndHeader, growing
// each buffer geometrically whenever the encoder reports it was too small
// (spec.md §4.6 "Header-block emission failure").
func encodeBlock(enc *hc.QpackEncoder, streamID uint64, block []hc.HeaderField) (encOut, hdrOut []byte, err error) {
	ctx := enc.StartHeader(streamID, streamID)
	encBuf := make([]byte, 256)
	hdrBuf := make([]byte, 256)
	for _, hf := range block {
		for {
			nEnc, nHdr, status := enc.Encode(ctx, encBuf, hdrBuf, hf, encNoIndex)
			switch status {
			case hc.EncodeOK:
				encOut = append(encOut, encBuf[:nEnc]...)
				hdrOut = append(hdrOut, hdrBuf[:nHdr]...)
			case hc.EncodeNoBufEnc:
				encBuf = make([]byte, len(encBuf)*2)
				continue
			case hc.EncodeNoBufHdr:
				hdrBuf = make([]byte, len(hdrBuf)*2)
				continue
			}
			break
		}
	}
	prefixBuf := make([]byte, 32)
	n := enc.EndHeader(ctx, prefixBuf)
	prefixed := make([]byte, 0, n+len(hdrOut))
	prefixed = append(prefixed, prefixBuf[:n]...)
	prefixed = append(prefixed, hdrOut...)
	return encOut, prefixed, nil
}
