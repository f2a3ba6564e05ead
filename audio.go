package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/braheezy/qoa"
	"github.com/ebitengine/oto/v3"
)

// ambientTrack loops a QOA file for as long as the scene runs.
type ambientTrack struct {
	player *oto.Player
	stop   chan struct{}
	done   chan struct{}
}

// looper is the part of *oto.Player the rewind loop drives.
type looper interface {
	IsPlaying() bool
	Play()
}

func playAmbient(path string) (*ambientTrack, error) {
	qoaBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ambient track: %w", err)
	}
	metadata, samples, err := qoa.Decode(qoaBytes)
	if err != nil {
		return nil, fmt.Errorf("decode ambient track: %w", err)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate: int(metadata.SampleRate),
		// only 1 or 2 are supported by oto
		ChannelCount: int(metadata.Channels),
		// QOA is always 16 bit
		Format: oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	reader := qoa.NewReader(samples, int(metadata.Channels))
	t := &ambientTrack{
		player: ctx.NewPlayer(reader),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	t.player.Play()

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		loopPlayback(t.player, reader, ticker.C, t.stop)
	}()
	return t, nil
}

// loopPlayback rewinds and restarts p each tick it is found idle, until
// stop is closed.
func loopPlayback(p looper, r io.Seeker, tick <-chan time.Time, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-tick:
			if !p.IsPlaying() {
				// Rewind the track to the beginning
				r.Seek(0, io.SeekStart)
				p.Play()
			}
		}
	}
}

// close stops the rewind loop before releasing the player.
func (t *ambientTrack) close() {
	close(t.stop)
	<-t.done
	t.player.Pause()
	t.player.Close()
}
