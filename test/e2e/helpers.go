//go:build e2e
// +build e2e

/*
Copyright (c) 2025 fluidos-contrib
Distributed under the terms of the MIT license
*/

package e2e

import (
	"os/exec"
	"strings"

	"github.com/onsi/ginkgo/v2"

	"github.com/fluidos-contrib/rear-orchestrator/test/utils"
)

// applyManifest pipes a YAML document into kubectl apply.
func applyManifest(manifest string) {
	ginkgo.GinkgoHelper()
	cmd := exec.Command("kubectl", "apply", "-f", "-")
	cmd.Stdin = strings.NewReader(manifest)
	_, err := utils.Run(cmd)
	if err != nil {
		ginkgo.Fail("applying manifest: " + err.Error())
	}
}

// kubectlGet retrieves a Kubernetes resource with optional JSONPath query
func kubectlGet(resource, name, jsonpath string) (string, error) {
	ginkgo.GinkgoHelper()
	args := []string{"get", resource}
	if name != "" {
		args = append(args, name)
	}
	args = append(args, "-n", namespace)
	if jsonpath != "" {
		args = append(args, "-o", "jsonpath="+jsonpath)
	}
	cmd := exec.Command("kubectl", args...)
	output, err := utils.Run(cmd)
	return strings.TrimSpace(output), err
}

// kubectlDelete removes a named resource, tolerating absence.
func kubectlDelete(resource, name string) {
	ginkgo.GinkgoHelper()
	cmd := exec.Command("kubectl", "delete", resource, name, "-n", namespace, "--ignore-not-found")
	_, _ = utils.Run(cmd)
}
