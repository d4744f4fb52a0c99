// entry point for the rear-orchestrator manager
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	restconfig "sigs.k8s.io/controller-runtime/pkg/client/config"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	advertisementv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/advertisement/v1alpha1"
	fluidosv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/fluidos/v1alpha1"
	nodecorev1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/nodecore/v1alpha1"
	reservationv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/api/reservation/v1alpha1"
	"github.com/fluidos-contrib/rear-orchestrator/internal/config"
	"github.com/fluidos-contrib/rear-orchestrator/internal/controller"
	"github.com/fluidos-contrib/rear-orchestrator/internal/model"
	webhookv1alpha1 "github.com/fluidos-contrib/rear-orchestrator/internal/webhook/v1alpha1"
)

var (
	scheme = runtime.NewScheme()
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))

	utilruntime.Must(nodecorev1alpha1.AddToScheme(scheme))
	utilruntime.Must(advertisementv1alpha1.AddToScheme(scheme))
	utilruntime.Must(reservationv1alpha1.AddToScheme(scheme))
	utilruntime.Must(fluidosv1alpha1.AddToScheme(scheme))
}

func main() {
	var metricsAddr string
	var enableLeaderElection bool
	var configFile string

	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "The address the metric endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	flag.StringVar(&configFile, "config", "", "Path to an optional YAML configuration file.")
	flag.Parse()

	log.SetLogger(zap.New(zap.UseDevMode(true)))

	fmt.Println("Starting REAR orchestrator")

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	restCfg, err := restconfig.GetConfig()
	if err != nil {
		fmt.Printf("Error getting kubeconfig: %v\n", err)
		os.Exit(1)
	}

	ctx := signals.SetupSignalHandler()

	// The identity lookup happens before the manager cache exists, so it
	// uses a direct client.
	directClient, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		fmt.Printf("Error creating client: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.DiscoverIdentity(ctx, directClient); err != nil {
		fmt.Printf("Error retrieving node identity: %v\n", err)
		os.Exit(1)
	}

	mgr, err := manager.New(restCfg, manager.Options{
		Scheme:           scheme,
		LeaderElection:   enableLeaderElection,
		LeaderElectionID: "rear-orchestrator",
	})
	if err != nil {
		fmt.Printf("Error creating manager: %v\n", err)
		os.Exit(1)
	}

	reconciler := &controller.FLUIDOSDeploymentReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Config: cfg,
		Engine: model.NewRequestBasedEngine(),
	}
	if err := reconciler.SetupWithManager(mgr); err != nil {
		fmt.Printf("Error setting up controller: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("ENABLE_WEBHOOKS") != "false" {
		if err := webhookv1alpha1.SetupFLUIDOSDeploymentWebhookWithManager(mgr); err != nil {
			fmt.Printf("Error setting up webhook: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Starting manager")
	if err := mgr.Start(ctx); err != nil {
		fmt.Printf("Error running manager: %v\n", err)
		os.Exit(1)
	}
}
