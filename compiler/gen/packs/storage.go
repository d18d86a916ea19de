package packs

import "github.com/JNZader/apigen-sub011/compiler/gen"

// FileStorage emits a blob storage abstraction with either a local
// filesystem or an S3 backend, selected by the config.
type FileStorage struct{}

// Feature returns the gating flag.
func (FileStorage) Feature() gen.Feature { return gen.FeatureFileStorage }

// Generate returns the pack files for the config's target.
func (FileStorage) Generate(c *gen.Config) (*gen.FileMap, error) {
	fm := gen.NewFileMap()
	d := newPackData(c)
	switch c.Target {
	case "kotlin":
		tmpl := storageLocalKotlinTmpl
		if d.Backend == "s3" {
			tmpl = storageS3KotlinTmpl
		}
		if err := render(fm, tmpl, "src/main/kotlin/"+d.NsDir+"/storage/FileStorage.kt", d); err != nil {
			return nil, err
		}
	case "dotnet":
		tmpl := storageLocalDotnetTmpl
		if d.Backend == "s3" {
			tmpl = storageS3DotnetTmpl
		}
		if err := render(fm, tmpl, "Storage/FileStorage.cs", d); err != nil {
			return nil, err
		}
	case "go":
		tmpl := storageLocalGoTmpl
		if d.Backend == "s3" {
			tmpl = storageS3GoTmpl
		}
		if err := render(fm, tmpl, "internal/storage/storage.go", d); err != nil {
			return nil, err
		}
	}
	return fm, nil
}

var storageLocalKotlinTmpl = parse("storage-local-kotlin", `package {{.Namespace}}.storage

import org.springframework.stereotype.Service
import java.nio.file.Files
import java.nio.file.Path

@Service
class FileStorage(private val root: Path = Path.of("uploads")) {

    fun save(name: String, content: ByteArray): Path {
        Files.createDirectories(root)
        val target = root.resolve(name)
        Files.write(target, content)
        return target
    }

    fun load(name: String): ByteArray = Files.readAllBytes(root.resolve(name))
}
`)

var storageS3KotlinTmpl = parse("storage-s3-kotlin", `package {{.Namespace}}.storage

import org.springframework.beans.factory.annotation.Value
import org.springframework.stereotype.Service
import software.amazon.awssdk.core.sync.RequestBody
import software.amazon.awssdk.services.s3.S3Client

@Service
class FileStorage(
    private val s3: S3Client,
    @Value("\${storage.bucket}") private val bucket: String,
) {

    fun save(name: String, content: ByteArray) {
        s3.putObject({ it.bucket(bucket).key(name) }, RequestBody.fromBytes(content))
    }

    fun load(name: String): ByteArray =
        s3.getObject { it.bucket(bucket).key(name) }.readAllBytes()
}
`)

var storageLocalDotnetTmpl = parse("storage-local-dotnet", `namespace {{.Namespace}}.Storage;

public class FileStorage(string root = "uploads")
{
    public async Task<string> SaveAsync(string name, byte[] content)
    {
        Directory.CreateDirectory(root);
        var target = Path.Combine(root, name);
        await File.WriteAllBytesAsync(target, content);
        return target;
    }

    public Task<byte[]> LoadAsync(string name) =>
        File.ReadAllBytesAsync(Path.Combine(root, name));
}
`)

var storageS3DotnetTmpl = parse("storage-s3-dotnet", `using Amazon.S3;
using Amazon.S3.Model;

namespace {{.Namespace}}.Storage;

public class FileStorage(IAmazonS3 s3, IConfiguration configuration)
{
    private string Bucket => configuration["Storage:Bucket"] ?? "{{.Project}}";

    public Task SaveAsync(string name, byte[] content) =>
        s3.PutObjectAsync(new PutObjectRequest
        {
            BucketName = Bucket,
            Key = name,
            InputStream = new MemoryStream(content),
        });

    public async Task<byte[]> LoadAsync(string name)
    {
        using var response = await s3.GetObjectAsync(Bucket, name);
        using var buffer = new MemoryStream();
        await response.ResponseStream.CopyToAsync(buffer);
        return buffer.ToArray();
    }
}
`)

var storageLocalGoTmpl = parse("storage-local-go", `// Code generated by apigen. DO NOT EDIT.

// Package storage persists uploaded blobs on the local filesystem.
package storage

import (
	"os"
	"path/filepath"
)

// Store writes blobs below a root directory.
type Store struct {
	Root string
}

// Save writes content under name and returns the full path.
func (s *Store) Save(name string, content []byte) (string, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(s.Root, name)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", err
	}
	return target, nil
}

// Load reads the blob stored under name.
func (s *Store) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Root, name))
}
`)

var storageS3GoTmpl = parse("storage-s3-go", `// Code generated by apigen. DO NOT EDIT.

// Package storage persists uploaded blobs in an S3 bucket.
package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store writes blobs to one bucket.
type Store struct {
	Client *s3.Client
	Bucket string
}

// Save uploads content under name.
func (s *Store) Save(ctx context.Context, name string, content []byte) error {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.Bucket,
		Key:    &name,
		Body:   bytes.NewReader(content),
	})
	return err
}

// Load downloads the blob stored under name.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &name,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
`)
