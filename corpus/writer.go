package corpus

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

const (
	permDir  os.FileMode = 0o755
	permFile os.FileMode = 0o644
	bufSize              = 64 * 1024
)

// Write はフレーム列をシリアライズし、その結果でpathをアトミックに置き換えます。
// 親ディレクトリがなければ作成し、書き込んだバイト数を返します。
//
// データは対象ディレクトリ内の一時ファイルに書かれ、同期された後pathへリネームされます。
// 読み手には以前のファイルか完全な新ファイルのどちらかしか見えません。
// 失敗時は必ず一時ファイルを削除します。
func Write(ctx context.Context, path string, frames []frame.Frame) (int, error) {
	data, err := Marshal(frames)
	if err != nil {
		return 0, err
	}
	if err := WriteFile(ctx, path, bytes.NewReader(data)); err != nil {
		return 0, err
	}
	return len(data), nil
}

// WriteFile はrの内容でpathをアトミックに置き換えます。
func WriteFile(ctx context.Context, path string, r io.Reader) error {
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	default:
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, permDir); err != nil {
		return errors.NewIOError("mkdir", dir, err)
	}
	if err := writeAtomic(ctx, dir, path, r); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}

func writeAtomic(ctx context.Context, dir, dest string, r io.Reader) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(permFile); err != nil {
		return fail(err)
	}

	bw := bufio.NewWriterSize(tmp, bufSize)
	if _, err := io.Copy(bw, &ctxReader{ctx: ctx, r: r}); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	// ベストエフォート: リネームを永続化する
	_ = syncDir(dir)
	return nil
}

// ctxReader は毎回のRead前にctxを確認する
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	default:
	}
	return cr.r.Read(p)
}
