package main

import (
	"io"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quicwg/qpack-go/hc"
	"github.com/quicwg/qpack-go/internal/qif"
)

var (
	decMaxBlocked    int
	decTableCapacity uint32
)

var decodeCmd = &cobra.Command{
	Use:   "decode [in.bin [out.qif]]",
	Short: "Decode a framed QPACK byte stream back into a QIF header list file",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().IntVarP(&decMaxBlocked, "blocked", "b", 100, "maximum number of streams the decoder may block")
	decodeCmd.Flags().Uint32VarP(&decTableCapacity, "table-capacity", "t", 4096, "dynamic table capacity in bytes")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
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
		logger = log.New(os.Stderr, "decode: ", log.Lmicroseconds)
	}

	dec := hc.NewQpackDecoder(hc.TableCapacity(decTableCapacity), decMaxBlocked)
	dec.SetLogger(logger)

	fr := qif.NewFrameReader(in)
	results := map[uint64][]hc.HeaderField{}
	pending := map[uint64]bool{}
	var ackBuf []byte

	resume := func() error {
		for streamID := range pending {
			status, headers, err := dec.DecodeHeaderBlock(streamID, nil)
			if err != nil {
				return err
			}
			if status == hc.DecodeDone {
				results[streamID] = headers
				delete(pending, streamID)
				ackBuf = dec.AcknowledgeHeaderBlock(ackBuf, streamID)
			}
		}
		return nil
	}

	for {
		streamID, payload, err := fr.ReadFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if streamID == 0 {
			if _, err := dec.EncStreamIn(payload); err != nil {
				return err
			}
			if err := resume(); err != nil {
				return err
			}
			continue
		}
		dec.StartHeaderBlock(streamID, len(payload))
		pending[streamID] = true
		status, headers, err := dec.DecodeHeaderBlock(streamID, payload)
		if err != nil {
			return err
		}
		switch status {
		case hc.DecodeDone:
			results[streamID] = headers
			delete(pending, streamID)
			ackBuf = dec.AcknowledgeHeaderBlock(ackBuf, streamID)
		case hc.DecodeBlocked:
			logger.Printf("stream %d blocked, insert count %d", streamID, dec.InsertCount())
		}
	}

	if len(pending) > 0 {
		logger.Printf("%d streams never unblocked", len(pending))
	}

	ids := make([]uint64, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	w := qif.NewWriter(out)
	for _, id := range ids {
		if err := w.WriteHeaderBlock(results[id]); err != nil {
			return err
		}
	}
	return nil
}
