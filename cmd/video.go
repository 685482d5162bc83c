package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// VideoList lists uploaded videos.
func (r *Runner) VideoList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	videos, err := r.videos.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, cmd.Bool("pretty"))
	}

	for _, video := range videos {
		r.writePlainln("%4d %-30s %s", video.ID, video.Titre, video.URL)
	}
	return r.writePlainln("%d vidéo(s)", len(videos))
}

// VideoShow prints one video.
func (r *Runner) VideoShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	video, err := r.videos.Get(ctx, int(cmd.Int("id")))
	if err != nil {
		return err
	}
	return r.writeJSON(video, true)
}

// VideoDelete removes an uploaded video.
func (r *Runner) VideoDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	id := int(cmd.Int("id"))
	if err := r.videos.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlainln("✓ Vidéo %d supprimée", id)
}
