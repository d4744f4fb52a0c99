//go:build e2e
// +build e2e

/*
Copyright (c) 2025 fluidos-contrib
Distributed under the terms of the MIT license
*/

package e2e

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	placementTimeout = 2 * time.Minute
	pollInterval     = 2 * time.Second
)

func deploymentManifest(name string) string {
	return fmt.Sprintf(`
apiVersion: fluidos.eu/v1alpha1
kind: FLUIDOSDeployment
metadata:
  name: %s
  namespace: %s
spec:
  template:
    spec:
      containers:
      - name: main
        image: registry.k8s.io/pause:3.9
        resources:
          requests:
            cpu: 500m
            memory: 512Mi
`, name, namespace)
}

var _ = Describe("FLUIDOSDeployment placement", Ordered, func() {
	AfterEach(func() {
		kubectlDelete("fluidosdeployment", "e2e-placed")
		kubectlDelete("fluidosdeployment", "e2e-unplaced")
		kubectlDelete("flavour", "e2e-flavour")
	})

	It("should solve a deployment when a local flavour fits", func() {
		By("advertising local capacity")
		applyManifest(fmt.Sprintf(`
apiVersion: nodecore.fluidos.eu/v1alpha1
kind: Flavour
metadata:
  name: e2e-flavour
  namespace: %s
spec:
  type: k8s-fluidos
  providerID: provider-e2e
  characteristics:
    cpu: "4"
    memory: 16777216Ki
    architecture: amd64
  owner:
    domain: buyer.example.com
    nodeID: buyer-e2e
`, namespace))

		By("creating the deployment")
		applyManifest(deploymentManifest("e2e-placed"))

		By("waiting for the placement to resolve")
		Eventually(func(g Gomega) {
			phase, err := kubectlGet("fluidosdeployment", "e2e-placed", "{.status.phase}")
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(phase).To(Equal("Solved"))
		}, placementTimeout, pollInterval).Should(Succeed())

		provider, err := kubectlGet("fluidosdeployment", "e2e-placed", "{.status.provider}")
		Expect(err).NotTo(HaveOccurred())
		Expect(provider).To(Equal("e2e-flavour"))
	})

	It("should report no match when nothing fits", func() {
		By("creating a deployment without any advertised capacity")
		applyManifest(deploymentManifest("e2e-unplaced"))

		By("waiting for the negotiation to give up")
		Eventually(func(g Gomega) {
			phase, err := kubectlGet("fluidosdeployment", "e2e-unplaced", "{.status.phase}")
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(phase).To(Equal("NoMatch"))
		}, placementTimeout, pollInterval).Should(Succeed())
	})

	It("should parent the solver to its deployment", func() {
		applyManifest(deploymentManifest("e2e-unplaced"))

		Eventually(func(g Gomega) {
			owner, err := kubectlGet("solver", "e2e-unplaced-solver", "{.metadata.ownerReferences[0].name}")
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(owner).To(Equal("e2e-unplaced"))
		}, placementTimeout, pollInterval).Should(Succeed())
	})
})
