package docker

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// dockerfile is the builder image definition. ONE_LINE_COMMAND is replaced
// with the folded build script.
const dockerfile = `
FROM debian:bookworm-slim

RUN mkdir /app
WORKDIR /app
ENV CONDA_ROOT=/var/lib/conda

RUN apt-get update && \
    apt-get install --yes bzip2 ca-certificates coreutils curl gcc g++ && \
    apt-get autoclean

RUN curl -fsSL https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh > miniconda.sh
RUN bash miniconda.sh -b -f -p $CONDA_ROOT
RUN echo 'ONE_LINE_COMMAND' > build_lockfile.sh

ENTRYPOINT ["/bin/bash", "./build_lockfile.sh"]
`

// buildScript runs inside the container with the scratch directory mounted
// at /app/artifacts.
const buildScript = `set -e
cd artifacts
# conda env create does not report the name it used, so pass one explicitly.
ENV_NAME=$(cat env_name)
$CONDA_ROOT/bin/conda env create -f deps.yml -n $ENV_NAME
# The prefix is a path inside this container.
$CONDA_ROOT/bin/conda env export -n $ENV_NAME | grep -v "^prefix:" > deps.lock.yml
`

// foldScript drops comment lines and joins the rest with ";".
func foldScript(script string) string {
	lines := make([]string, 0)
	for _, line := range strings.Split(strings.TrimRight(script, "\n"), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, ";")
}

// Dockerfile returns the complete builder image definition.
func Dockerfile() string {
	return strings.Replace(dockerfile, "ONE_LINE_COMMAND", foldScript(buildScript), 1)
}

// ImageRef returns the tag for the builder image, derived from the definition
// so a changed definition never reuses a stale image.
func ImageRef(repository, definition string) string {
	return fmt.Sprintf("%s:%016x", repository, xxhash.Sum64String(definition))
}
